package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/domain"
	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/export"
	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	svc *service.ProjectService
}

// Register mounts the project routes on the /api group.
func Register(rg *gin.RouterGroup, svc *service.ProjectService) {
	h := &Handler{svc: svc}

	rg.POST("/save-project", h.save)
	rg.GET("/projects", h.list)
	rg.GET("/projects/:filename", h.get)
	rg.GET("/export/:filename", h.export)
	rg.DELETE("/delete/:filename", h.delete)
}

func (h *Handler) save(c *gin.Context) {
	var p domain.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	filename, err := h.svc.Save(c.Request.Context(), &p)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[error] save project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Project saved successfully",
		"filename": filename,
	})
}

func (h *Handler) list(c *gin.Context) {
	summaries, err := h.svc.List(c.Request.Context())
	if err != nil {
		log.Printf("[error] list projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("filename"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		log.Printf("[error] get project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read project"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) export(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("filename"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		log.Printf("[error] export project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read project"})
		return
	}

	buf, err := export.Workbook(p)
	if err != nil {
		log.Printf("[error] build workbook: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build spreadsheet"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(p.ProjectName)+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("filename"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		log.Printf("[error] delete project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
