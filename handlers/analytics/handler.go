package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/SajBajra/Global-Travel-Blog/db"
	"github.com/SajBajra/Global-Travel-Blog/models"
	"github.com/SajBajra/Global-Travel-Blog/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func today() string {
	return time.Now().Format("2006-01-02")
}

// loadOrCreateToday returns today's stat row, creating it on first hit.
func loadOrCreateToday(tx *gorm.DB) (*models.DailyStat, error) {
	var stat models.DailyStat
	err := tx.Where("date = ?", today()).First(&stat).Error
	if err == nil {
		return &stat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stat = models.DailyStat{
		Date:     today(),
		TopBlogs: []byte("[]"),
	}
	if err := tx.Create(&stat).Error; err != nil {
		return nil, err
	}
	return &stat, nil
}

// RecordNewUser bumps today's new-user counter. Errors are logged, never
// surfaced: losing a stat must not fail a signup.
func RecordNewUser() {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		stat, err := loadOrCreateToday(tx)
		if err != nil {
			return err
		}
		return tx.Model(&models.DailyStat{}).Where("id = ?", stat.ID).
			UpdateColumn("new_users", gorm.Expr("new_users + 1")).Error
	})
	if err != nil {
		utils.LogError(err, "Error recording daily stat in RecordNewUser")
	}
}

// @Summary Track a page view
// @Description Record a page view (and optionally a blog view) for today's stats
// @Tags analytics
// @Accept json
// @Produce json
// @Param view body models.TrackViewRequest true "Viewed page"
// @Success 200 {object} models.DailyStat
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /analytics/view [post]
func TrackView(c *gin.Context) {
	var req models.TrackViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var stat models.DailyStat
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		s, err := loadOrCreateToday(tx)
		if err != nil {
			return err
		}

		// The page-view counter is incremented in the database, so two
		// concurrent views cannot overwrite each other's count.
		updates := map[string]interface{}{
			"page_views": gorm.Expr("page_views + 1"),
		}

		if req.BlogID != "" {
			var blogIDs []string
			if len(s.TopBlogs) > 0 {
				_ = json.Unmarshal(s.TopBlogs, &blogIDs)
			}
			blogIDs = append(blogIDs, req.BlogID)
			if raw, err := json.Marshal(blogIDs); err == nil {
				s.TopBlogs = raw
				updates["top_blogs"] = s.TopBlogs
			}
		}

		s.UniqueVisitors = countUniqueVisitor(c, s)
		updates["unique_visitors"] = s.UniqueVisitors

		if err := tx.Model(&models.DailyStat{}).Where("id = ?", s.ID).Updates(updates).Error; err != nil {
			return err
		}

		s.PageViews++
		stat = *s
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving daily stats"})
		return
	}

	c.JSON(http.StatusOK, stat)
}

// countUniqueVisitor tracks distinct signed-in visitors per day in a redis
// set. Without redis the previous value is kept, so the column degrades to
// "unknown" rather than a wrong number.
func countUniqueVisitor(c *gin.Context, stat *models.DailyStat) int {
	rdb := utils.GetRedis()
	if rdb == nil {
		return stat.UniqueVisitors
	}

	userID, exists := c.Get("user_id")
	if !exists {
		return stat.UniqueVisitors
	}

	ctx := context.Background()
	key := "visitors:" + stat.Date
	if err := rdb.SAdd(ctx, key, userID).Err(); err != nil {
		return stat.UniqueVisitors
	}
	rdb.Expire(ctx, key, 48*time.Hour)

	if n, err := rdb.SCard(ctx, key).Result(); err == nil {
		return int(n)
	}
	return stat.UniqueVisitors
}

// @Summary Get daily stats (Admin only)
// @Description All daily stat rows, oldest first, for the charts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.DailyStat
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /analytics [get]
func GetDailyStats(c *gin.Context) {
	var stats []models.DailyStat
	if err := db.DB.Order("date ASC").Find(&stats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving stats: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

type blogViews struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Views int    `json:"views"`
}

// @Summary Get the dashboard summary (Admin only)
// @Description Totals, entity counts and the five most viewed blogs
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /analytics/summary [get]
func GetSummary(c *gin.Context) {
	var stats []models.DailyStat
	if err := db.DB.Order("date ASC").Find(&stats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving stats: " + err.Error()})
		return
	}

	totalPageViews := 0
	totalUniqueVisitors := 0
	totalNewUsers := 0
	viewCounts := map[string]int{}

	for _, day := range stats {
		totalPageViews += day.PageViews
		totalUniqueVisitors += day.UniqueVisitors
		totalNewUsers += day.NewUsers

		var blogIDs []string
		if len(day.TopBlogs) > 0 {
			_ = json.Unmarshal(day.TopBlogs, &blogIDs)
		}
		for _, id := range blogIDs {
			viewCounts[id]++
		}
	}

	topBlogs := rankTopBlogs(viewCounts, 5)

	var userCount, blogCount, commentCount, destinationCount, pendingReports int64
	db.DB.Model(&models.User{}).Count(&userCount)
	db.DB.Model(&models.Blog{}).Count(&blogCount)
	db.DB.Model(&models.Comment{}).Count(&commentCount)
	db.DB.Model(&models.Destination{}).Count(&destinationCount)
	db.DB.Model(&models.Report{}).Where("status = ?", models.ReportPending).Count(&pendingReports)

	c.JSON(http.StatusOK, gin.H{
		"totalPageViews":      totalPageViews,
		"totalUniqueVisitors": totalUniqueVisitors,
		"totalNewUsers":       totalNewUsers,
		"topBlogs":            topBlogs,
		"userCount":           userCount,
		"blogCount":           blogCount,
		"commentCount":        commentCount,
		"destinationCount":    destinationCount,
		"pendingReports":      pendingReports,
	})
}

func rankTopBlogs(viewCounts map[string]int, limit int) []blogViews {
	ranked := make([]blogViews, 0, len(viewCounts))
	for id, views := range viewCounts {
		ranked = append(ranked, blogViews{ID: id, Views: views})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Views != ranked[j].Views {
			return ranked[i].Views > ranked[j].Views
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	ids := make([]string, len(ranked))
	for i, b := range ranked {
		ids[i] = b.ID
	}

	if len(ids) > 0 {
		var blogs []models.Blog
		if err := db.DB.Where("id IN ?", ids).Find(&blogs).Error; err == nil {
			titles := map[string]string{}
			for _, b := range blogs {
				titles[b.ID] = b.Title
			}
			for i := range ranked {
				if title, ok := titles[ranked[i].ID]; ok {
					ranked[i].Title = title
				}
			}
		}
	}

	return ranked
}
