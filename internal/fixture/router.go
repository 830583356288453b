package fixture

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InstancePath is the metadata route served by the fixture, matching Azure.
const InstancePath = "/metadata/instance"

// Error bodies mirror the ones returned by the Azure endpoint.
const (
	errMissingHeader     = "Required metadata header not specified"
	errMissingAPIVersion = "Bad request. api-version was not specified in the request"
)

// NewRouter returns a gin engine that serves doc as the instance metadata
// document. Requests are validated the same way the real endpoint does.
func NewRouter(doc []byte) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET(InstancePath, func(ctx *gin.Context) {
		if ctx.GetHeader("Metadata") != "true" {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMissingHeader})
			return
		}
		if ctx.Query("api-version") == "" {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":           errMissingAPIVersion,
				"newest-versions": []string{"2021-02-01", "2020-12-01", "2020-10-01"},
			})
			return
		}
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", doc)
	})

	return router
}
