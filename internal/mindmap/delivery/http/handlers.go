package http

import (
	"mindmap-srv/pkg/response"
	"mindmap-srv/pkg/util"

	"github.com/gin-gonic/gin"
)

// @Summary Generate a mind map
// @Description Analyze a transcript (inline segments or a MinIO transcript object) and store its mind map.
// @Description A stored map is returned as is unless force is set.
// @Tags MindMap
// @Accept json
// @Produce json
// @Param body body generateReq true "Generation request"
// @Success 200 {object} generateResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/mindmaps/generate [post]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "mindmap.delivery.http.Generate: usecase Generate failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateResp(o))
}

// @Summary Get a mind map
// @Tags MindMap
// @Produce json
// @Param video_id path string true "Video ID"
// @Success 200 {object} mindMapResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/mindmaps/{video_id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Get(ctx, req.VideoID)
	if err != nil {
		h.l.Errorf(ctx, "mindmap.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMindMapResp(o))
}

// @Summary Delete a mind map
// @Tags MindMap
// @Produce json
// @Param video_id path string true "Video ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/mindmaps/{video_id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, req.VideoID); err != nil {
		h.l.Errorf(ctx, "mindmap.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// @Summary List mind maps
// @Tags MindMap
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/mindmaps [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "mindmap.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Search mind map nodes
// @Tags MindMap
// @Produce json
// @Param q query string true "Query"
// @Param video_id query string false "Restrict to one video"
// @Param limit query int false "Max results (default 10, max 50)"
// @Success 200 {object} searchResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/mindmaps/search [get]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "mindmap.delivery.http.Search: usecase Search failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResp(o))
}

// @Summary Extract topics from text
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body topicsReq true "Text"
// @Success 200 {object} topicsResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/mindmaps/topics [post]
func (h *handler) ExtractTopics(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTopicsRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.ExtractTopics(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "mindmap.delivery.http.ExtractTopics: usecase ExtractTopics failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, topicsResp{Topics: o.Topics, Keywords: o.Keywords})
}

// @Summary Summarize text
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body summarizeReq true "Text"
// @Success 200 {object} summarizeResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/mindmaps/summarize [post]
func (h *handler) Summarize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSummarizeRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Summarize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "mindmap.delivery.http.Summarize: usecase Summarize failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, summarizeResp{Summary: o.Summary, OriginalLength: o.OriginalLength, SummaryLength: o.SummaryLength})
}

// @Summary Estimate processing time
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body estimateReq true "Transcript size"
// @Success 200 {object} estimateResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/mindmaps/estimate [post]
func (h *handler) Estimate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEstimateRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Estimate(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, estimateResp{
		SegmentsCount:    o.SegmentsCount,
		DurationSeconds:  o.Duration,
		EstimatedSeconds: util.Round(o.EstimatedSeconds, 2),
		UsingMock:        o.UsingMock,
	})
}

// @Summary Analyzer status
// @Tags Analysis
// @Produce json
// @Success 200 {object} statusResp
// @Router /api/v1/mindmaps/status [get]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, h.newStatusResp(h.uc.Status(c.Request.Context())))
}

// @Summary Export a mind map
// @Description Upload the mind map to object storage and return a presigned download URL.
// @Tags MindMap
// @Accept json
// @Produce json
// @Param video_id path string true "Video ID"
// @Param body body exportReq false "Export options"
// @Success 200 {object} exportResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/mindmaps/{video_id}/export [post]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Export(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "mindmap.delivery.http.Export: usecase Export failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExportResp(o))
}
