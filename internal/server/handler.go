package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/astro"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/camera"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/catalog"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/logging"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/sky"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/state"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/version"
)

// Handler serves the sky API.
type Handler struct {
	log *logging.Logger
	mgr *state.Manager
}

// NewHandler creates the API handler on top of the shared state manager.
func NewHandler(log *logging.Logger, mgr *state.Manager) *Handler {
	return &Handler{log: log.WithPrefix("server"), mgr: mgr}
}

// HealthCheck handles GET /healthz.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.Version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// GetObserver handles GET /v1/sky/observer.
func (h *Handler) GetObserver(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"observer":    h.mgr.Observer(),
		"catalogSize": h.mgr.CatalogSize(),
	})
}

// VisibleResponse is the body of GET /v1/sky/visible.
type VisibleResponse struct {
	At       time.Time         `json:"at"`
	Observer astro.Observer    `json:"observer"`
	Twilight string            `json:"twilight"`
	Count    int               `json:"count"`
	Stars    []sky.VisibleStar `json:"stars"`
}

// snapshotFor resolves the optional `at` query parameter. Without it the
// latest snapshot is served; an explicit timestamp is computed ad hoc and
// never installed, so the stream and the TUI keep seeing the live sky.
func (h *Handler) snapshotFor(c *gin.Context) (state.Snapshot, bool) {
	atStr := c.Query("at")
	if atStr != "" {
		at, err := time.Parse(time.RFC3339, atStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid at (expected RFC3339): %v", err)})
			return state.Snapshot{}, false
		}
		return h.mgr.ComputeAt(at.UTC()), true
	}

	snap, ok := h.mgr.Snapshot()
	if !ok {
		snap = h.mgr.Recompute(time.Now().UTC())
	}
	return snap, true
}

// GetVisible handles GET /v1/sky/visible.
func (h *Handler) GetVisible(c *gin.Context) {
	snap, ok := h.snapshotFor(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, VisibleResponse{
		At:       snap.At,
		Observer: snap.Observer,
		Twilight: snap.Twilight.String(),
		Count:    len(snap.Stars),
		Stars:    snap.Stars,
	})
}

// ProjectedStar is one star mapped to canvas pixels.
type ProjectedStar struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	X                  float64 `json:"x"`
	Y                  float64 `json:"y"`
	DistanceFromCenter float64 `json:"distanceFromCenter"`
	Magnitude          float64 `json:"magnitude"`
	Altitude           float64 `json:"altitude"`
	ColorIndex         float64 `json:"colorIndex"`
	Size               float64 `json:"size"`
	Color              string  `json:"color"`
}

// ProjectedResponse is the body of GET /v1/sky/projected: everything a thin
// canvas client needs to draw one frame.
type ProjectedResponse struct {
	At        time.Time              `json:"at"`
	Mode      string                 `json:"mode"`
	Camera    camera.State           `json:"camera"`
	Stars     []ProjectedStar        `json:"stars"`
	Cardinals []camera.CardinalPoint `json:"cardinals,omitempty"`
	Direction string                 `json:"direction,omitempty"`
	HorizonY  *float64               `json:"horizonY,omitempty"`
}

func queryFloat(c *gin.Context, name string, def float64) (float64, error) {
	s := c.Query(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	return v, nil
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	s := c.Query(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	return v, nil
}

// GetProjected handles GET /v1/sky/projected. The camera is built from the
// query parameters, so the server stays stateless per request and clients
// own their view state.
func (h *Handler) GetProjected(c *gin.Context) {
	mode := c.DefaultQuery("mode", camera.ModePerspective)

	width, err := queryInt(c, "width", 800)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	height, err := queryInt(c, "height", 600)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if width <= 0 || height <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "width and height must be positive"})
		return
	}

	cam, err := h.buildCamera(c, mode, width, height)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, ok := h.snapshotFor(c)
	if !ok {
		return
	}

	resp := ProjectedResponse{
		At:     snap.At,
		Mode:   mode,
		Camera: cam.State(),
		Stars:  make([]ProjectedStar, 0, len(snap.Stars)),
	}
	zoom := cam.ZoomLevel()
	for _, vs := range snap.Stars {
		p, ok := cam.Project(vs.AzDeg, vs.AltDeg)
		if !ok {
			continue
		}
		resp.Stars = append(resp.Stars, ProjectedStar{
			ID:                 vs.ID,
			Name:               vs.Name,
			X:                  p.X,
			Y:                  p.Y,
			DistanceFromCenter: p.DistanceFromCenter,
			Magnitude:          vs.Mag,
			Altitude:           vs.AltDeg,
			ColorIndex:         vs.ColorIndex,
			Size:               sky.StarSize(vs.Mag, zoom),
			Color:              catalog.BVToRGB(vs.ColorIndex).Hex(),
		})
	}

	if persp, isPersp := cam.(*camera.PerspectiveCamera); isPersp {
		resp.Cardinals = persp.VisibleCardinals()
		resp.Direction = persp.DirectionName()
		if y, ok := persp.HorizonY(); ok {
			resp.HorizonY = &y
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) buildCamera(c *gin.Context, mode string, width, height int) (camera.SkyCamera, error) {
	switch mode {
	case camera.ModePerspective:
		cam := camera.NewPerspective(width, height)
		az, err := queryFloat(c, "azimuth", cam.Azimuth())
		if err != nil {
			return nil, err
		}
		alt, err := queryFloat(c, "altitude", cam.Altitude())
		if err != nil {
			return nil, err
		}
		fov, err := queryFloat(c, "fov", cam.Fov())
		if err != nil {
			return nil, err
		}
		cam.SetState(camera.State{Azimuth: az, Altitude: alt, Fov: fov})
		return cam, nil

	case camera.ModeAzimuthal:
		v := camera.NewAzimuthal(width, height)
		zoom, err := queryFloat(c, "zoom", 1)
		if err != nil {
			return nil, err
		}
		offX, err := queryFloat(c, "offsetX", 0)
		if err != nil {
			return nil, err
		}
		offY, err := queryFloat(c, "offsetY", 0)
		if err != nil {
			return nil, err
		}
		v.SetState(camera.State{Zoom: zoom, OffsetX: offX, OffsetY: offY})
		return v, nil

	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}
