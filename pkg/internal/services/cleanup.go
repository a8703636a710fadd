package services

import (
	"time"

	"github.com/lumenpress/lumen/pkg/internal/database"
	"github.com/lumenpress/lumen/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// DoAutoDatabaseCleanup drops expired auth tickets and tags no post uses anymore.
func DoAutoDatabaseCleanup() {
	deadline := time.Now()
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up expired auth tickets...")

	var count int64
	if tx := database.C.
		Where("expired_at < ?", deadline).
		Delete(&models.AuthTicket{}); tx.Error != nil {
		log.Error().Err(tx.Error).Msg("An error occurred when running auth tickets cleanup...")
	} else {
		count += tx.RowsAffected
	}

	if tx := database.C.
		Where("id NOT IN (SELECT DISTINCT tag_id FROM post_tags)").
		Delete(&models.Tag{}); tx.Error != nil {
		log.Error().Err(tx.Error).Msg("An error occurred when running orphan tags cleanup...")
	} else {
		count += tx.RowsAffected
	}

	log.Debug().Int64("affected", count).Msg("Clean up entirely done!")
}
