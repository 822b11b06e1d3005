package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/order-api/services"
	"github.com/yeremiapane/order-api/utils"
)

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

// respondServiceError memetakan error dari services ke status HTTP.
func respondServiceError(c *gin.Context, err error) {
	var nf *services.NotFoundError
	switch {
	case errors.As(err, &nf), errors.Is(err, services.ErrDanglingReference):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrStillReferenced):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.ErrorLogger.WithError(err).
			WithField("path", c.Request.URL.Path).
			Error("Unexpected store error")
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

// parseID membaca path param sebagai id positif. Kalau gagal, response 400
// sudah dikirim dan ok bernilai false.
func parseID(c *gin.Context, param string) (id uint, ok bool) {
	n, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || n == 0 {
		utils.RespondError(c, http.StatusBadRequest, &CustomError{"invalid " + param})
		return 0, false
	}
	return uint(n), true
}

// rejectPresetID: id tidak boleh diisi client saat POST.
func rejectPresetID(c *gin.Context, field string, id *uint) bool {
	if id == nil {
		return false
	}
	utils.RespondError(c, http.StatusBadRequest, &CustomError{field + " cannot be set on POST request"})
	return true
}

// rejectMismatchedID: id di body (kalau ada) harus sama dengan id di URL.
func rejectMismatchedID(c *gin.Context, field string, id *uint, pathID uint) bool {
	if id == nil || *id == pathID {
		return false
	}
	utils.RespondError(c, http.StatusBadRequest, &CustomError{field + " does not match URL"})
	return true
}
