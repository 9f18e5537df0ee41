package http

import (
	"github.com/gin-gonic/gin"

	"task-suggestion-service/pkg/response"
)

// Suggest godoc
// @Summary     Generate task suggestions
// @Description Splits free text into task phrases, categorizes them and returns a bounded list of scheduled suggestions.
// @Tags        Suggestion
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Free-text input"
// @Success     200  {object} suggestResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "User Not Found"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Model Not Loaded"
// @Failure     503  {object} response.Resp "Service Unavailable"
// @Router      /api/v1/task/suggestions [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Suggest(ctx, req.toScope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSuggestResp(output))
}

// SuggestTitles godoc
// @Summary     Generate title suggestions
// @Description Paraphrases free text into task titles and resolves each title's date and time.
// @Tags        Suggestion
// @Accept      json
// @Produce     json
// @Param       body body titleSuggestReq true "Free-text input"
// @Success     200  {object} titleSuggestResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "User Not Found"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     503  {object} response.Resp "Service Unavailable"
// @Router      /api/v1/task/title-suggestions [POST]
func (h *handler) SuggestTitles(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTitleSuggestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SuggestTitles(ctx, req.toScope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestTitles: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTitleSuggestResp(output))
}
