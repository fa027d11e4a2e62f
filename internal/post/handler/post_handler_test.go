package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	authdomain "github.com/PrincyBhingradiya/auth-posts-api/internal/auth/domain"
	"github.com/PrincyBhingradiya/auth-posts-api/internal/mocks"
	"github.com/PrincyBhingradiya/auth-posts-api/internal/post/domain"
	"github.com/PrincyBhingradiya/auth-posts-api/internal/post/handler"
	"github.com/PrincyBhingradiya/auth-posts-api/internal/post/service"
	"github.com/PrincyBhingradiya/auth-posts-api/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires the handler behind a stand-in for the auth middleware that
// injects a fixed current user.
func newTestApp(h *handler.PostHandler) *fiber.App {
	app := fiber.New()
	injectUser := func(c *fiber.Ctx) error {
		c.Locals(constant.ContextUserKey, &authdomain.User{ID: "user-1"})
		return c.Next()
	}
	posts := app.Group("/posts", injectUser)
	posts.Post("/", h.Create)
	posts.Get("/", h.List)
	posts.Put("/:id", h.Update)
	posts.Delete("/:id", h.Delete)
	posts.Get("/location/filter", h.FilterByLocation)
	posts.Get("/stats/count", h.Stats)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	rec.Code = resp.StatusCode
	_, err = rec.Body.ReadFrom(resp.Body)
	require.NoError(t, err)
	return rec
}

func TestCreatePostHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPostRepository(ctrl)
	app := newTestApp(handler.NewPostHandler(service.NewPostService(mockRepo)))

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		rec := doJSON(t, app, "POST", "/posts/", fiber.Map{
			"title": "First", "body": "Hello", "latitude": 12.97, "longitude": 77.59,
		})
		assert.Equal(t, fiber.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "post created successfully")
		assert.Contains(t, rec.Body.String(), `"createdBy":"user-1"`)
	})

	t.Run("non-numeric latitude", func(t *testing.T) {
		rec := doJSON(t, app, "POST", "/posts/", fiber.Map{
			"title": "First", "body": "Hello", "latitude": "abc",
		})
		assert.Equal(t, fiber.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid input")
	})

	t.Run("missing title", func(t *testing.T) {
		rec := doJSON(t, app, "POST", "/posts/", fiber.Map{"body": "Hello"})
		assert.Equal(t, fiber.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "title is required")
	})
}

func TestListPostsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPostRepository(ctrl)
	app := newTestApp(handler.NewPostHandler(service.NewPostService(mockRepo)))

	now := time.Now()
	mockRepo.EXPECT().ListByOwner(gomock.Any(), "user-1").Return([]domain.Post{
		{ID: "post-1", Title: "First", Body: "Hello", CreatedBy: "user-1", IsActive: true, CreatedAt: now, UpdatedAt: now},
	}, nil)

	rec := doJSON(t, app, "GET", "/posts/", nil)
	assert.Equal(t, fiber.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestUpdatePostHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPostRepository(ctrl)
	app := newTestApp(handler.NewPostHandler(service.NewPostService(mockRepo)))

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByIDAndOwner(gomock.Any(), "post-1", "user-1").
			Return(&domain.Post{ID: "post-1", Title: "Old", Body: "Old", CreatedBy: "user-1", IsActive: true}, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		rec := doJSON(t, app, "PUT", "/posts/post-1", fiber.Map{"title": "New", "body": "New body"})
		assert.Equal(t, fiber.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "post updated")
		assert.Contains(t, rec.Body.String(), `"title":"New"`)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByIDAndOwner(gomock.Any(), "post-9", "user-1").Return(nil, nil)

		rec := doJSON(t, app, "PUT", "/posts/post-9", fiber.Map{"title": "New", "body": "New body"})
		assert.Equal(t, fiber.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "post not found")
	})
}

func TestDeletePostHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPostRepository(ctrl)
	app := newTestApp(handler.NewPostHandler(service.NewPostService(mockRepo)))

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().DeleteByIDAndOwner(gomock.Any(), "post-1", "user-1").Return(true, nil)

		rec := doJSON(t, app, "DELETE", "/posts/post-1", nil)
		assert.Equal(t, fiber.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "post deleted")
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().DeleteByIDAndOwner(gomock.Any(), "post-9", "user-1").Return(false, nil)

		rec := doJSON(t, app, "DELETE", "/posts/post-9", nil)
		assert.Equal(t, fiber.StatusNotFound, rec.Code)
	})
}

func TestFilterByLocationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPostRepository(ctrl)
	app := newTestApp(handler.NewPostHandler(service.NewPostService(mockRepo)))

	t.Run("success", func(t *testing.T) {
		lat, lng := 12.97, 77.59
		mockRepo.EXPECT().ListByOwnerAndLocation(gomock.Any(), "user-1", lat, lng).
			Return([]domain.Post{{ID: "post-1", CreatedBy: "user-1", Latitude: &lat, Longitude: &lng}}, nil)

		rec := doJSON(t, app, "GET", "/posts/location/filter?latitude=12.97&longitude=77.59", nil)
		assert.Equal(t, fiber.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"count":1`)
	})

	t.Run("missing params", func(t *testing.T) {
		rec := doJSON(t, app, "GET", "/posts/location/filter", nil)
		assert.Equal(t, fiber.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "latitude and longitude required")
	})

	t.Run("non-numeric latitude", func(t *testing.T) {
		rec := doJSON(t, app, "GET", "/posts/location/filter?latitude=abc&longitude=77.59", nil)
		assert.Equal(t, fiber.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "latitude must be a number")
	})

	t.Run("non-numeric longitude", func(t *testing.T) {
		rec := doJSON(t, app, "GET", "/posts/location/filter?latitude=12.97&longitude=xyz", nil)
		assert.Equal(t, fiber.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "longitude must be a number")
	})
}

func TestStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPostRepository(ctrl)
	app := newTestApp(handler.NewPostHandler(service.NewPostService(mockRepo)))

	mockRepo.EXPECT().CountByOwner(gomock.Any(), "user-1").
		Return(&domain.PostStats{TotalPosts: 5, ActiveCount: 3, InactiveCount: 2}, nil)

	rec := doJSON(t, app, "GET", "/posts/stats/count", nil)
	assert.Equal(t, fiber.StatusOK, rec.Code)

	var body struct {
		Success       bool `json:"success"`
		TotalPosts    int  `json:"totalPosts"`
		ActiveCount   int  `json:"activeCount"`
		InactiveCount int  `json:"inactiveCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 5, body.TotalPosts)
	assert.Equal(t, 3, body.ActiveCount)
	assert.Equal(t, 2, body.InactiveCount)
}
