package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"smuggr.xyz/courtplanner/internal/ingest"
	"smuggr.xyz/courtplanner/internal/planstore"
	"smuggr.xyz/courtplanner/internal/scheduling/model"
	"smuggr.xyz/courtplanner/internal/scheduling/solver"
	"smuggr.xyz/courtplanner/internal/uploadstore"
)

// uploadEnvelope is the four logical tables parse_excel read as sheets
// (original_source/planner/planner.py), expressed as CSV text blocks
// inside one JSON document — the stand-in the retrieval pack's dependency
// surface supports in place of a real spreadsheet reader (see
// internal/ingest's package doc and DESIGN.md).
type uploadEnvelope struct {
	Activities string `json:"activities"`
	Stages     string `json:"stages"`
	Courts     string `json:"courts"`
	Groups     string `json:"groups"`
}

// Server wires the HTTP layer to the in-memory stores. It holds no
// scheduling state itself — every request builds and discards its own
// model.Input, per the core's single-threaded, non-shared-state contract.
type Server struct {
	Uploads *uploadstore.Store
	Plans   *planstore.Store
	Log     *slog.Logger
}

// NewRouter builds the gin engine exposing the four endpoints this service
// offers: health, upload, plan, and plan retrieval.
func NewRouter(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger)

	r.GET("/health", s.handleHealth)
	r.POST("/uploads", s.handleUpload)
	r.POST("/schedule/plan", s.handleSchedulePlan)
	r.GET("/schedule/:id", s.handleScheduleGet)
	return r
}

func (s *Server) requestLogger(c *gin.Context) {
	reqID := uuid.NewString()
	c.Set("request_id", reqID)
	c.Next()
	s.Log.Info("request",
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
	)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing multipart field \"file\""})
		return
	}
	defer file.Close()

	buf := make([]byte, 0, header.Size)
	chunk := make([]byte, 32*1024)
	for {
		n, rerr := file.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if rerr != nil {
			break
		}
	}

	id := s.Uploads.Put(header.Filename, buf)
	c.JSON(http.StatusOK, gin.H{"uploadId": id, "filename": header.Filename})
}

func (s *Server) handleSchedulePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}
	if err := validateOptions(req.Options); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid options: %v", err)})
		return
	}

	uploadID := s.Uploads.LatestID()
	if v, ok := req.Options["uploadId"].(string); ok && v != "" {
		uploadID = v
	}
	if uploadID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "no data uploaded yet; POST a file to /uploads first",
		})
		return
	}
	upload, ok := s.Uploads.Get(uploadID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown uploadId"})
		return
	}

	var envelope uploadEnvelope
	if err := json.Unmarshal(upload.Data, &envelope); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("malformed upload: %v", err)})
		return
	}

	input, err := ingest.Parse(ingest.Tables{
		Activities:   strings.NewReader(envelope.Activities),
		Stages:       strings.NewReader(envelope.Stages),
		Courts:       strings.NewReader(envelope.Courts),
		Groups:       strings.NewReader(envelope.Groups),
		RestTime:     req.RestTime,
		EvaluateTime: req.EvaluateTime,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid data: %v", err)})
		return
	}

	entries, err := solver.Solve(input)
	if err != nil {
		// Fatal kinds (invalid period, non-positive count, unknown
		// activity) reject the input; they are not server errors.
		if errors.Is(err, model.ErrInvalidPeriod) ||
			errors.Is(err, model.ErrNonPositiveCount) ||
			errors.Is(err, model.ErrUnknownActivity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if entries == nil {
		// Infeasible is a null return, not an error; the HTTP layer renders
		// it as a 400 with a human-facing message.
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "no feasible timetable for the given constraints; try widening the window, adding courts, or relaxing group limits",
		})
		return
	}

	slots := solver.Assemble(input, entries)
	plan := s.Plans.Put(req.Window.Date, slots)
	c.JSON(http.StatusOK, planResponse{ID: plan.ID, Date: plan.Date, Slots: slotDTOs(plan.Slots)})
}

func (s *Server) handleScheduleGet(c *gin.Context) {
	id := c.Param("id")
	plan, ok := s.Plans.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}
	c.JSON(http.StatusOK, planResponse{ID: plan.ID, Date: plan.Date, Slots: slotDTOs(plan.Slots)})
}
