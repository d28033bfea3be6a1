package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Data wraps a resource or collection in the {"data": ...} envelope.
func Data(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{"data": data})
}

// Message sends a plain {"message": ...} body.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// ValidationErrors sends 422 with all accumulated per-field messages.
func ValidationErrors(c *gin.Context, errs map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
}

// GeneralError sends a failure that is not attributable to a single field,
// keyed under the "general" bucket.
func GeneralError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"errors": gin.H{"general": []string{message}}})
}

// Unauthenticated is the uniform 401 body for protected routes.
func Unauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
}
