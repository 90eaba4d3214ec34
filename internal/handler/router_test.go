package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"student-grades/internal/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWrapAccessLogAndCORS(t *testing.T) {
	store := new(MockGradeStore)
	store.On("DeleteGrade", mock.Anything, int64(3)).Return(nil)

	var accessLog bytes.Buffer
	h := handler.Wrap(newMockRouter(store), []string{"http://localhost:3000"}, &accessLog)

	req := httptest.NewRequest("DELETE", "/grades/3", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, accessLog.String(), `"DELETE /grades/3 HTTP/1.1" 200`)
}

func TestWrapRecoversFromPanic(t *testing.T) {
	store := new(MockGradeStore)
	store.On("GetGrade", mock.Anything, int64(1)).Run(func(mock.Arguments) {
		panic("boom")
	})

	var accessLog bytes.Buffer
	h := handler.Wrap(newMockRouter(store), []string{"*"}, &accessLog)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/grades/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
