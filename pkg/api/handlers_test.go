package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primeasset/recruit-landing/pkg/clients/leadsink"
	"github.com/primeasset/recruit-landing/pkg/logger"
	"github.com/primeasset/recruit-landing/pkg/models"
	"github.com/primeasset/recruit-landing/pkg/services"
	"github.com/primeasset/recruit-landing/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingSink struct {
	mu   sync.Mutex
	sent []models.LeadSubmission
	err  error
}

func (s *recordingSink) Send(ctx context.Context, lead models.LeadSubmission) (leadsink.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, lead)
	return leadsink.Receipt{SubmissionID: "sub-1"}, s.err
}

func newTestRouter(sink leadsink.Client) *gin.Engine {
	r := gin.New()
	NewHandlers(sink, "https://www.primeasset.kr/about/company", logger.Discard()).RegisterRoutes(r)
	return r
}

func validForm() url.Values {
	return url.Values{
		"name":       {"홍길동"},
		"phone":      {"010-1234-5678"},
		"region":     {"서울 강남구"},
		"experience": {"new"},
		"privacy":    {"true"},
	}
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","lead_endpoint_configured":false}`, w.Body.String())
}

func TestLandingPage(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(&recordingSink{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "상담 신청하기")
}

func TestSubmitFormSuccess(t *testing.T) {
	sink := &recordingSink{}
	w := postForm(newTestRouter(sink), "/apply", validForm())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "신청 완료!")
	assert.Contains(t, w.Body.String(), services.MessageSubmitted)
	require.Len(t, sink.sent, 1)
	assert.Equal(t, models.LeadSubmission{
		Name:       "홍길동",
		Phone:      "010-1234-5678",
		Region:     "서울 강남구",
		Experience: models.ExperienceNew,
		Privacy:    true,
	}, sink.sent[0])
}

func TestSubmitFormAcceptsBrowserCheckboxValue(t *testing.T) {
	sink := &recordingSink{}
	form := validForm()
	form.Set("privacy", "on")

	w := postForm(newTestRouter(sink), "/apply", form)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, sink.sent, 1)
}

func TestSubmitFormValidationErrors(t *testing.T) {
	sink := &recordingSink{}
	form := validForm()
	form.Set("phone", "010-12-34")
	form.Del("privacy")

	w := postForm(newTestRouter(sink), "/apply", form)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, validation.Messages[models.FieldPhone])
	assert.Contains(t, body, validation.Messages[models.FieldPrivacy])
	assert.Contains(t, body, `value="홍길동"`)
	assert.Contains(t, body, `value="010-12-34"`)
	assert.Empty(t, sink.sent)
}

func TestSubmitFormNotConfigured(t *testing.T) {
	w := postForm(newTestRouter(nil), "/apply", validForm())

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), services.MessageNotConfigured)
	assert.Contains(t, w.Body.String(), `value="홍길동"`)
}

func TestSubmitFormTransportError(t *testing.T) {
	sink := &recordingSink{err: errors.New("connection refused")}
	w := postForm(newTestRouter(sink), "/apply", validForm())

	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, services.MessageTransportFailure)
	assert.Contains(t, body, `value="서울 강남구"`)
	assert.NotContains(t, body, "신청 완료!")
}

func TestResetForm(t *testing.T) {
	w := postForm(newTestRouter(&recordingSink{}), "/apply/reset", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/#recruit-form", w.Header().Get("Location"))
}

func TestSubmitLeadJSON(t *testing.T) {
	sink := &recordingSink{}
	w := postJSON(newTestRouter(sink), `{"name":"홍길동","phone":"01012345678","region":"서울 강남구","experience":"manager","privacy":true}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "sub-1", resp["submission_id"])
	assert.Equal(t, false, resp["confirmed"])
	require.Len(t, sink.sent, 1)
	assert.Equal(t, models.ExperienceManager, sink.sent[0].Experience)
}

func TestSubmitLeadJSONValidation(t *testing.T) {
	sink := &recordingSink{}
	w := postJSON(newTestRouter(sink), `{"name":"홍","phone":"010-1234-5678","region":"","experience":"new","privacy":false}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp struct {
		Status string            `json:"status"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, map[string]string{
		models.FieldName:    validation.Messages[models.FieldName],
		models.FieldRegion:  validation.Messages[models.FieldRegion],
		models.FieldPrivacy: validation.Messages[models.FieldPrivacy],
	}, resp.Errors)
	assert.Empty(t, sink.sent)
}

func TestSubmitLeadJSONErrors(t *testing.T) {
	lead := `{"name":"홍길동","phone":"010-1234-5678","region":"서울","experience":"new","privacy":true}`

	w := postJSON(newTestRouter(&recordingSink{}), `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(newTestRouter(nil), lead)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), services.MessageNotConfigured)

	w = postJSON(newTestRouter(&recordingSink{err: errors.New("timeout")}), lead)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), services.MessageTransportFailure)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusCreated, statusFor(nil))
	assert.Equal(t, http.StatusConflict, statusFor(services.ErrSubmissionInFlight))
	assert.Equal(t, http.StatusConflict, statusFor(services.ErrAlreadySubmitted))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("other")))
}

func TestCheckboxValue(t *testing.T) {
	for _, v := range []string{"on", "ON", "true", "1"} {
		assert.True(t, checkboxValue(v), v)
	}
	for _, v := range []string{"", "off", "false", "yes"} {
		assert.False(t, checkboxValue(v), v)
	}
}
