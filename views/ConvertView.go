package views

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KartForge/ShpDxfBridge/Transformer"
	"github.com/KartForge/ShpDxfBridge/config"
	"github.com/KartForge/ShpDxfBridge/crs"
	"github.com/KartForge/ShpDxfBridge/methods"
	"github.com/KartForge/ShpDxfBridge/models"
)

type UserController struct {
}

func taskDir(taskid, sub string) string {
	path, _ := filepath.Abs(filepath.Join(config.DataDir, taskid, sub))
	return path
}

// Upload receives a drawing or shapefile archive, converts it and
// records the outcome. Form fields: file, direction (dxf2shp or
// shp2dxf), optional crs selection token applied to shapefile output.
func (uc *UserController) Upload(c *gin.Context) {
	direction := c.PostForm("direction")
	if direction != "dxf2shp" && direction != "shp2dxf" {
		c.String(http.StatusBadRequest, "direction must be dxf2shp or shp2dxf")
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.String(http.StatusBadRequest, "Bad request")
		return
	}

	taskid := uuid.New().String()
	inDir := taskDir(taskid, "in")
	outDir := taskDir(taskid, "out")
	path := filepath.Join(inDir, file.Filename)
	if err := c.SaveUploadedFile(file, path); err != nil {
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".zip" || ext == ".rar" {
		if err := methods.Unzip(path); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
	}

	job := Transformer.Batch{SourceDir: inDir, DestDir: outDir}
	var counts Transformer.Counts
	var cerr error
	if direction == "dxf2shp" {
		job.CRS = c.PostForm("crs")
		counts, cerr = job.RunDxfToShp()
	} else {
		counts, cerr = job.RunShpToDxf()
	}
	if cerr != nil {
		if errors.Is(cerr, crs.ErrInvalidSelection) || errors.Is(cerr, crs.ErrZoneOutOfRange) {
			c.String(http.StatusBadRequest, cerr.Error())
			return
		}
		c.String(http.StatusInternalServerError, cerr.Error())
		return
	}

	record := models.ConvertRecord{
		TaskID:    taskid,
		FileName:  file.Filename,
		Direction: direction,
		Points:    counts.Points,
		Lines:     counts.Lines,
		Polygons:  counts.Polygons,
		Status:    "done",
		OutDir:    outDir,
		Date:      time.Now().Format("2006-01-02 15:04:05"),
	}
	if models.DB != nil {
		models.DB.Create(&record)
	}

	c.JSON(http.StatusOK, gin.H{
		"taskid":   taskid,
		"points":   counts.Points,
		"lines":    counts.Lines,
		"polygons": counts.Polygons,
	})
}

// Preview returns one task file as GeoJSON for the map client. Query
// parameters: taskid and the file name inside the task directory.
func (uc *UserController) Preview(c *gin.Context) {
	taskid := c.Query("taskid")
	name := c.Query("name")
	if taskid == "" || name == "" {
		c.String(http.StatusBadRequest, "taskid and name are required")
		return
	}

	ext := strings.ToLower(filepath.Ext(name))
	target := ""
	for _, f := range Transformer.FindFiles(taskDir(taskid, ""), strings.TrimPrefix(ext, ".")) {
		if filepath.Base(f) == name {
			target = f
			break
		}
	}
	if target == "" {
		c.String(http.StatusNotFound, "file not found")
		return
	}

	switch ext {
	case ".dxf":
		fc, err := Transformer.DxfToGeoJSON(target)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, fc)
	case ".shp":
		fc, err := Transformer.ShpToGeoJSON(target)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, fc)
	default:
		c.String(http.StatusBadRequest, "preview supports .dxf and .shp")
	}
}

// Download streams the converted output of one task as a zip.
func (uc *UserController) Download(c *gin.Context) {
	taskid := c.Query("taskid")
	if taskid == "" {
		c.String(http.StatusBadRequest, "taskid is required")
		return
	}
	outDir := taskDir(taskid, "out")
	if _, err := os.Stat(outDir); err != nil {
		c.String(http.StatusNotFound, "task not found")
		return
	}

	data, err := methods.ZipFileOut(outDir)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Header("Content-Type", "application/zip")
	c.Header("Content-Disposition", "attachment; filename="+taskid+".zip")
	c.Data(http.StatusOK, "application/zip", data)
}

// ApplyCrs stamps every shapefile of one task's output with the
// selected projection descriptor.
func (uc *UserController) ApplyCrs(c *gin.Context) {
	taskid := c.PostForm("taskid")
	token := c.PostForm("crs")
	if taskid == "" || token == "" {
		c.String(http.StatusBadRequest, "taskid and crs are required")
		return
	}
	entry, err := crs.Resolve(token)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	n, err := crs.Apply(taskDir(taskid, "out"), entry)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"stamped": n, "key": entry.Key, "epsg": entry.EPSG})
}

// CrsCatalog lists the selectable projection descriptors.
func (uc *UserController) CrsCatalog(c *gin.Context) {
	type item struct {
		Index int    `json:"index"`
		Label string `json:"label"`
		Key   string `json:"key"`
		EPSG  int    `json:"epsg"`
	}
	items := make([]item, 0, len(crs.Catalog()))
	for i, e := range crs.Catalog() {
		items = append(items, item{Index: i + 1, Label: e.Label, Key: e.Key, EPSG: e.EPSG})
	}
	c.JSON(http.StatusOK, items)
}

// Records returns the conversion history, newest first.
func (uc *UserController) Records(c *gin.Context) {
	if models.DB == nil {
		c.JSON(http.StatusOK, []models.ConvertRecord{})
		return
	}
	var records []models.ConvertRecord
	models.DB.Order("date desc").Find(&records)
	c.JSON(http.StatusOK, records)
}
