package http

import (
	"errors"
	"io"

	"mindmap-srv/pkg/util"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGenerateRequest(c *gin.Context) (generateReq, error) {
	var req generateReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "mindmap.delivery.http.processGenerateRequest: ShouldBindJSON failed: %v", err)
		return req, errWrongBody
	}

	if err := req.validate(); err != nil {
		h.l.Warnf(ctx, "mindmap.delivery.http.processGenerateRequest: validate failed: %v", err)
		return req, err
	}
	return req, nil
}

func (h *handler) processGetRequest(c *gin.Context) (getReq, error) {
	req := getReq{VideoID: c.Param("video_id")}
	if err := util.IsVideoID(req.VideoID); err != nil {
		return req, errInvalidVideoID
	}
	return req, nil
}

func (h *handler) processListRequest(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "mindmap.delivery.http.processListRequest: ShouldBindQuery failed: %v", err)
		return req, errWrongQuery
	}
	return req, nil
}

func (h *handler) processSearchRequest(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "mindmap.delivery.http.processSearchRequest: ShouldBindQuery failed: %v", err)
		return req, errEmptyQuery
	}
	return req, nil
}

func (h *handler) processTopicsRequest(c *gin.Context) (topicsReq, error) {
	var req topicsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "mindmap.delivery.http.processTopicsRequest: ShouldBindJSON failed: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processSummarizeRequest(c *gin.Context) (summarizeReq, error) {
	var req summarizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "mindmap.delivery.http.processSummarizeRequest: ShouldBindJSON failed: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processEstimateRequest(c *gin.Context) (estimateReq, error) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "mindmap.delivery.http.processEstimateRequest: ShouldBindJSON failed: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

// processExportRequest - The body is optional; an empty body exports JSON
func (h *handler) processExportRequest(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.l.Errorf(c.Request.Context(), "mindmap.delivery.http.processExportRequest: ShouldBindJSON failed: %v", err)
		return req, errWrongBody
	}
	req.VideoID = c.Param("video_id")
	if err := util.IsVideoID(req.VideoID); err != nil {
		return req, errInvalidVideoID
	}
	return req, nil
}
