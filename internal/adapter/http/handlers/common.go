package handlers

import (
	"net/http"
	"strconv"

	"shop_manager/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCompany = pkg.NewDomainErrorSimple("INVALID_COMPANY", "Missing or invalid X-Company-ID header", http.StatusBadRequest)

// companyIDFromRequest resolves the tenant scope. Every row in the store is
// partitioned by company id; the session layer in front of this service puts
// the resolved id on the X-Company-ID header.
func companyIDFromRequest(c *gin.Context) (uint, bool) {
	raw := c.GetHeader("X-Company-ID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(errInvalidCompany.HTTPStatus, errInvalidCompany.ToHTTPError())
		return 0, false
	}
	return uint(id), true
}
