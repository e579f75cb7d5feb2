package blogs

import (
	"bytes"
	"encoding/json"
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

func asUser(userID, role string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		handler(c)
	}
}

func TestCreateBlog_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow("user-1", "Ana"))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "blogs"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/blogs", asUser("user-1", "user", CreateBlog))

	body, _ := json.Marshal(map[string]string{
		"title":    "A week in Kyoto",
		"content":  "Temples, tea houses and ten thousand steps a day.",
		"category": "Asia",
	})
	req, _ := http.NewRequest(http.MethodPost, "/blogs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var blog map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &blog)
	assert.Equal(t, "A week in Kyoto", blog["title"])
	assert.Equal(t, "Ana", blog["authorName"])
	assert.Equal(t, "approved", blog["status"])
	assert.Equal(t, float64(0), blog["likes"])
}

func TestCreateBlog_BlankTitle(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/blogs", asUser("user-1", "user", CreateBlog))

	body, _ := json.Marshal(map[string]string{
		"title":    "   ",
		"content":  "Some content",
		"category": "Asia",
	})
	req, _ := http.NewRequest(http.MethodPost, "/blogs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetAllBlogs(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "blogs" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "status"}).
			AddRow("blog-2", "Patagonia on a budget", "approved").
			AddRow("blog-1", "A week in Kyoto", "approved"))

	r := testutils.SetupTestRouter()
	r.GET("/blogs", GetAllBlogs)

	req, _ := http.NewRequest(http.MethodGet, "/blogs", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var blogs []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &blogs)
	assert.Len(t, blogs, 2)
	assert.Equal(t, "blog-2", blogs[0]["id"])
}

func TestGetAllBlogs_FilteredAndSorted(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE category = \$1 ORDER BY likes DESC LIMIT \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category", "likes"}).
			AddRow("blog-1", "A week in Kyoto", "Asia", 12))

	r := testutils.SetupTestRouter()
	r.GET("/blogs", GetAllBlogs)

	req, _ := http.NewRequest(http.MethodGet, "/blogs?category=Asia&_sort=likes&_order=desc&_limit=5", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var blogs []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &blogs)
	assert.Len(t, blogs, 1)
	assert.Equal(t, "Asia", blogs[0]["category"])
}

func TestGetBlogByID_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/blogs/:id", GetBlogByID)

	req, _ := http.NewRequest(http.MethodGet, "/blogs/missing", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdateBlog_NotAuthor(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author_id"}).
			AddRow("blog-1", "A week in Kyoto", "user-1"))

	r := testutils.SetupTestRouter()
	r.PUT("/blogs/:id", asUser("user-2", "user", UpdateBlog))

	body, _ := json.Marshal(map[string]string{"title": "Hijacked"})
	req, _ := http.NewRequest(http.MethodPut, "/blogs/blog-1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestDeleteBlog_CascadesInOneTransaction(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author_id"}).
			AddRow("blog-1", "A week in Kyoto", "user-1"))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM comment_likes WHERE comment_id IN \(SELECT id FROM comments WHERE blog_id = \$1\)`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "comments" WHERE blog_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`DELETE FROM "likes" WHERE blog_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "reports" WHERE blog_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "blogs" WHERE "blogs"."id" = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/blogs/:id", asUser("user-1", "user", DeleteBlog))

	req, _ := http.NewRequest(http.MethodDelete, "/blogs/blog-1", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestDeleteBlog_NotAuthorNotAdmin(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author_id"}).
			AddRow("blog-1", "A week in Kyoto", "user-1"))

	r := testutils.SetupTestRouter()
	r.DELETE("/blogs/:id", asUser("user-2", "user", DeleteBlog))

	req, _ := http.NewRequest(http.MethodDelete, "/blogs/blog-1", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestUpdateBlogStatus_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "status"}).
			AddRow("blog-1", "A week in Kyoto", "approved"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "blogs"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PATCH("/blogs/:id/status", asUser("admin-1", "admin", UpdateBlogStatus))

	body, _ := json.Marshal(map[string]string{"status": "rejected"})
	req, _ := http.NewRequest(http.MethodPatch, "/blogs/blog-1/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var blog map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &blog)
	assert.Equal(t, "rejected", blog["status"])
}

func TestUpdateBlogStatus_InvalidStatus(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "status"}).
			AddRow("blog-1", "A week in Kyoto", "approved"))

	r := testutils.SetupTestRouter()
	r.PATCH("/blogs/:id/status", asUser("admin-1", "admin", UpdateBlogStatus))

	body, _ := json.Marshal(map[string]string{"status": "archived"})
	req, _ := http.NewRequest(http.MethodPatch, "/blogs/blog-1/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
