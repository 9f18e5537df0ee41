package http

import (
	"github.com/gin-gonic/gin"
)

// processSuggestReq binds and validates the suggestions request body.
func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processSuggestReq: bind: %v", err)
		return req, errInvalidBody
	}
	return req, req.validate()
}

// processTitleSuggestReq binds and validates the title suggestions request body.
func (h *handler) processTitleSuggestReq(c *gin.Context) (titleSuggestReq, error) {
	var req titleSuggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processTitleSuggestReq: bind: %v", err)
		return req, errInvalidBody
	}
	return req, req.validate()
}
