package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveStoreOperation(t *testing.T) {
	okBefore := testutil.ToFloat64(StoreOperationsTotal.WithLabelValues("get", ResultSuccess))
	failBefore := testutil.ToFloat64(StoreOperationsTotal.WithLabelValues("get", ResultFailure))

	ObserveStoreOperation("get", nil, time.Millisecond)
	ObserveStoreOperation("get", errors.New("boom"), time.Millisecond)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(StoreOperationsTotal.WithLabelValues("get", ResultSuccess)))
	assert.Equal(t, failBefore+1, testutil.ToFloat64(StoreOperationsTotal.WithLabelValues("get", ResultFailure)))
}

func TestObserveSignInAndAssistant(t *testing.T) {
	before := testutil.ToFloat64(SignInsTotal.WithLabelValues("google", ResultSuccess))
	ObserveSignIn("google", nil)
	assert.Equal(t, before+1, testutil.ToFloat64(SignInsTotal.WithLabelValues("google", ResultSuccess)))

	aBefore := testutil.ToFloat64(AssistantRequestsTotal.WithLabelValues("outline", ResultFailure))
	ObserveAssistantRequest("outline", errors.New("quota"), time.Second)
	assert.Equal(t, aBefore+1, testutil.ToFloat64(AssistantRequestsTotal.WithLabelValues("outline", ResultFailure)))
}

func TestMiddleware_CountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/ping", "204"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/ping", "204")))
	assert.Equal(t, float64(0), testutil.ToFloat64(HTTPRequestsInFlight))
}
