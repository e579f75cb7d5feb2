package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/SajBajra/Global-Travel-Blog/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func asUser(userID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", "user")
		handler(c)
	}
}

func TestReportBlog_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow("blog-1", "A week in Kyoto"))
	mock.ExpectQuery(`SELECT \* FROM "reports" WHERE user_id = \$1 AND blog_id = \$2 AND type = \$3`).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "reports"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/blogs/:id/report", asUser("user-1", ReportBlog))

	body, _ := json.Marshal(map[string]string{"reason": "Spam"})
	req, _ := http.NewRequest(http.MethodPost, "/blogs/blog-1/report", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var rep map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &rep)
	assert.Equal(t, "blog", rep["type"])
	assert.Equal(t, "Spam", rep["reason"])
	assert.Equal(t, "pending", rep["status"])
}

func TestReportBlog_DefaultReason(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow("blog-1", "A week in Kyoto"))
	mock.ExpectQuery(`SELECT \* FROM "reports" WHERE user_id = \$1 AND blog_id = \$2 AND type = \$3`).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "reports"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/blogs/:id/report", asUser("user-1", ReportBlog))

	// No body at all still produces a report with the default reason.
	req, _ := http.NewRequest(http.MethodPost, "/blogs/blog-1/report", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var rep map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &rep)
	assert.Equal(t, "Inappropriate content", rep["reason"])
}

func TestReportBlog_AlreadyReported(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow("blog-1", "A week in Kyoto"))
	mock.ExpectQuery(`SELECT \* FROM "reports" WHERE user_id = \$1 AND blog_id = \$2 AND type = \$3`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "blog_id", "type"}).
			AddRow("report-1", "user-1", "blog-1", "blog"))

	r := testutils.SetupTestRouter()
	r.POST("/blogs/:id/report", asUser("user-1", ReportBlog))

	req, _ := http.NewRequest(http.MethodPost, "/blogs/blog-1/report", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, false, respBody["success"])
}

// Two racing reports can both pass the read check; the second insert then
// trips the unique index and must come back as the same conflict answer.
func TestReportBlog_RaceFallsBackToUniqueIndex(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow("blog-1", "A week in Kyoto"))
	mock.ExpectQuery(`SELECT \* FROM "reports" WHERE user_id = \$1 AND blog_id = \$2 AND type = \$3`).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "reports"`).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "idx_report_user_blog"`))
	mock.ExpectRollback()

	r := testutils.SetupTestRouter()
	r.POST("/blogs/:id/report", asUser("user-1", ReportBlog))

	req, _ := http.NewRequest(http.MethodPost, "/blogs/blog-1/report", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, false, respBody["success"])
}

func TestReportComment_RaceFallsBackToUniqueIndex(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "blog_id", "content"}).
			AddRow("comment-1", "blog-1", "Something rude"))
	mock.ExpectQuery(`SELECT \* FROM "reports" WHERE user_id = \$1 AND comment_id = \$2`).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "reports"`).
		WillReturnError(errors.New(`UNIQUE constraint failed: reports.user_id, reports.comment_id`))
	mock.ExpectRollback()

	r := testutils.SetupTestRouter()
	r.POST("/comments/:id/report", asUser("user-1", ReportComment))

	req, _ := http.NewRequest(http.MethodPost, "/comments/comment-1/report", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestReportComment_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "blog_id", "content"}).
			AddRow("comment-1", "blog-1", "Something rude"))
	mock.ExpectQuery(`SELECT \* FROM "reports" WHERE user_id = \$1 AND comment_id = \$2`).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "reports"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/comments/:id/report", asUser("user-1", ReportComment))

	body, _ := json.Marshal(map[string]string{"reason": "Harassment"})
	req, _ := http.NewRequest(http.MethodPost, "/comments/comment-1/report", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var rep map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &rep)
	assert.Equal(t, "comment", rep["type"])
	assert.Equal(t, "comment-1", rep["commentId"])
	assert.Equal(t, "blog-1", rep["blogId"])
}

func TestGetAllReports_FilterByStatus(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "reports" WHERE status = \$1 ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "status"}).
			AddRow("report-2", "comment", "pending").
			AddRow("report-1", "blog", "pending"))

	r := testutils.SetupTestRouter()
	r.GET("/reports", GetAllReports)

	req, _ := http.NewRequest(http.MethodGet, "/reports?status=pending", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var reports []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &reports)
	assert.Len(t, reports, 2)
}

func TestUpdateReport_Resolve(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "reports" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "blog_id", "type", "status"}).
			AddRow("report-1", "user-1", "blog-1", "blog", "pending"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "reports"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PATCH("/reports/:id", UpdateReport)

	body, _ := json.Marshal(map[string]string{
		"status":      "resolved",
		"actionTaken": "Blog removed",
	})
	req, _ := http.NewRequest(http.MethodPatch, "/reports/report-1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var rep map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &rep)
	assert.Equal(t, "resolved", rep["status"])
	assert.Equal(t, "Blog removed", rep["actionTaken"])
	assert.NotNil(t, rep["resolvedAt"])
}

func TestUpdateReport_InvalidStatus(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "reports" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow("report-1", "pending"))

	r := testutils.SetupTestRouter()
	r.PATCH("/reports/:id", UpdateReport)

	body, _ := json.Marshal(map[string]string{"status": "ignored"})
	req, _ := http.NewRequest(http.MethodPatch, "/reports/report-1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
