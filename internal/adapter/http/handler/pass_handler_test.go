package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"loyalty-pass-service/internal/core/domain"
	"loyalty-pass-service/internal/core/ports"
	"loyalty-pass-service/internal/core/ports/mocks"
	"loyalty-pass-service/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func int64Ptr(v int64) *int64 { return &v }

type passHandlerDeps struct {
	h       *PassHandler
	loyalty *mocks.MockLoyaltyService
	passGen *mocks.MockPassGenerator
}

func setupPassHandler(t *testing.T) *passHandlerDeps {
	ctrl := gomock.NewController(t)
	d := &passHandlerDeps{
		loyalty: mocks.NewMockLoyaltyService(ctrl),
		passGen: mocks.NewMockPassGenerator(ctrl),
	}
	d.h = NewPassHandler(d.loyalty, d.passGen, zerolog.Nop())
	return d
}

func newPassContext(method, userID, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/pass/"+userID, bytes.NewReader([]byte(body)))
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	c.Params = gin.Params{{Key: "userId", Value: userID}}
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Create ---

func TestCreate_WithBody(t *testing.T) {
	d := setupPassHandler(t)

	d.loyalty.EXPECT().Create(gomock.Any(), "u1", ports.LoyaltyInput{
		CurrentPoints: int64Ptr(5),
		TotalPoints:   int64Ptr(10),
		Prizes:        int64Ptr(1),
	}).Return(&domain.LoyaltyRecord{CurrentPoints: 5, TotalPoints: 10, Prizes: 1}, nil)

	c, w := newPassContext(http.MethodPost, "u1", `{"currentPoints":5,"totalPoints":"10","prizes":1}`)
	d.h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "User u1 created", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["currentPoints"])
	assert.Equal(t, float64(10), data["totalPoints"])
	assert.Equal(t, float64(1), data["prizes"])
}

func TestCreate_EmptyBody(t *testing.T) {
	d := setupPassHandler(t)

	d.loyalty.EXPECT().Create(gomock.Any(), "u1", ports.LoyaltyInput{}).
		Return(&domain.LoyaltyRecord{}, nil)

	c, w := newPassContext(http.MethodPost, "u1", "")
	d.h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["currentPoints"])
	assert.Equal(t, float64(0), data["totalPoints"])
	assert.Equal(t, float64(0), data["prizes"])
}

func TestCreate_MalformedJSON(t *testing.T) {
	d := setupPassHandler(t)

	c, w := newPassContext(http.MethodPost, "u1", `{"currentPoints":`)
	d.h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "LOY_003", resp["error_code"])
	assert.Equal(t, "Invalid request body", resp["error"])
}

func TestCreate_RejectedPointValues(t *testing.T) {
	for _, body := range []string{
		`{"currentPoints":"lots"}`,
		`{"currentPoints":5.7}`,
		`{"currentPoints":1e20}`,
		`{"currentPoints":"0x10"}`,
	} {
		t.Run(body, func(t *testing.T) {
			d := setupPassHandler(t)
			// No Create expectation: invalid values never reach the service.

			c, w := newPassContext(http.MethodPost, "u1", body)
			d.h.Create(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeBody(t, w)
			assert.Equal(t, "LOY_003", resp["error_code"])
			assert.Equal(t, "Invalid request body", resp["error"])
		})
	}
}

func TestCreate_InvalidUserID(t *testing.T) {
	d := setupPassHandler(t)

	c, w := newPassContext(http.MethodPost, "bad%0Aid", "")
	c.Params = gin.Params{{Key: "userId", Value: "bad\nid"}}
	d.h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "LOY_003", decodeBody(t, w)["error_code"])
}

// --- Update ---

func TestUpdate_Success(t *testing.T) {
	d := setupPassHandler(t)
	rec := &domain.LoyaltyRecord{CurrentPoints: 5, TotalPoints: 10, Prizes: 1}

	d.loyalty.EXPECT().Update(gomock.Any(), "u1", ports.LoyaltyInput{
		CurrentPoints: int64Ptr(5),
		TotalPoints:   int64Ptr(10),
		Prizes:        int64Ptr(1),
	}).Return(rec, nil)
	d.passGen.EXPECT().Generate(gomock.Any(), "u1", rec).
		Return(&domain.PassArtifact{SerialNumber: "u1", Data: []byte("PK-archive")}, nil)

	c, w := newPassContext(http.MethodPut, "u1", `{"currentPoints":5,"totalPoints":10,"prizes":1}`)
	d.h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.PassContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="u1-loyalty.pkpass"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, []byte("PK-archive"), w.Body.Bytes())
}

func TestUpdate_MissingCurrentPoints(t *testing.T) {
	d := setupPassHandler(t)

	d.loyalty.EXPECT().Update(gomock.Any(), "u1", ports.LoyaltyInput{TotalPoints: int64Ptr(3)}).
		Return(nil, apperror.ErrMissingCurrentPoints())

	c, w := newPassContext(http.MethodPut, "u1", `{"totalPoints":3}`)
	d.h.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "LOY_001", decodeBody(t, w)["error_code"])
}

func TestUpdate_GenerationFailure(t *testing.T) {
	d := setupPassHandler(t)
	rec := &domain.LoyaltyRecord{CurrentPoints: 1}

	d.loyalty.EXPECT().Update(gomock.Any(), "u1", gomock.Any()).Return(rec, nil)
	d.passGen.EXPECT().Generate(gomock.Any(), "u1", rec).
		Return(nil, apperror.ErrPassGeneration(errors.New("signing credentials not loaded")))

	c, w := newPassContext(http.MethodPut, "u1", `{"currentPoints":1}`)
	d.h.Update(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "SYS_002", resp["error_code"])
	assert.NotContains(t, resp["error"], "credentials")
}

// --- Get ---

func TestGet_Success(t *testing.T) {
	d := setupPassHandler(t)
	rec := &domain.LoyaltyRecord{CurrentPoints: 7}

	d.loyalty.EXPECT().Get(gomock.Any(), "u2").Return(rec, nil)
	d.passGen.EXPECT().Generate(gomock.Any(), "u2", rec).
		Return(&domain.PassArtifact{SerialNumber: "u2", Data: []byte("zip")}, nil)

	c, w := newPassContext(http.MethodGet, "u2", "")
	d.h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "u2-loyalty.pkpass")
}

func TestGet_NotFound(t *testing.T) {
	d := setupPassHandler(t)

	d.loyalty.EXPECT().Get(gomock.Any(), "ghost").Return(nil, apperror.ErrUserNotFound())
	// No Generate expectation: the generator must not be called.

	c, w := newPassContext(http.MethodGet, "ghost", "")
	d.h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "LOY_002", decodeBody(t, w)["error_code"])
}
