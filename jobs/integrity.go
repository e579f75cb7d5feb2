package jobs

import (
	"github.com/SajBajra/Global-Travel-Blog/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartIntegritySweep schedules the nightly repair of denormalized state.
// The sweep is a safety net: normal operation maintains counters and
// cascades transactionally, the sweep fixes whatever a crash or a manual
// database edit left behind.
func StartIntegritySweep(db *gorm.DB) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@daily", func() {
		if err := RunIntegritySweep(db); err != nil {
			utils.LogError(err, "Integrity sweep failed")
		}
	})
	if err != nil {
		utils.LogError(err, "Could not schedule integrity sweep")
		return c
	}

	c.Start()
	utils.LogInfo("Integrity sweep scheduled")
	return c
}

// RunIntegritySweep removes orphaned rows and re-derives the like counters
// from the like tables.
func RunIntegritySweep(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// Replies whose parent is gone
		if err := tx.Exec(`DELETE FROM comments WHERE parent_id IS NOT NULL AND parent_id NOT IN (SELECT id FROM comments WHERE parent_id IS NULL)`).Error; err != nil {
			return err
		}

		// Comments whose blog is gone
		if err := tx.Exec(`DELETE FROM comments WHERE blog_id NOT IN (SELECT id FROM blogs)`).Error; err != nil {
			return err
		}

		// Likes and reports pointing at deleted targets
		if err := tx.Exec(`DELETE FROM likes WHERE blog_id NOT IN (SELECT id FROM blogs)`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM comment_likes WHERE comment_id NOT IN (SELECT id FROM comments)`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM reports WHERE blog_id NOT IN (SELECT id FROM blogs)`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM reports WHERE comment_id IS NOT NULL AND comment_id NOT IN (SELECT id FROM comments)`).Error; err != nil {
			return err
		}

		// Re-derive the counters from the like tables
		if err := tx.Exec(`UPDATE blogs SET likes = (SELECT COUNT(*) FROM likes WHERE likes.blog_id = blogs.id)`).Error; err != nil {
			return err
		}
		return tx.Exec(`UPDATE comments SET likes = (SELECT COUNT(*) FROM comment_likes WHERE comment_likes.comment_id = comments.id)`).Error
	})
}
