package utils

import "github.com/gin-gonic/gin"

// JSONSuccess writes the standard success envelope: a human-readable message
// plus the affected record(s).
func JSONSuccess(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, gin.H{"message": message, "data": data})
}

// JSONError writes a failure envelope carrying only the message.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
