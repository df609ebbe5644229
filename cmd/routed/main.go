// Command routed serves point-to-point route queries over a road network
// loaded from a CSV segment dataset.
//
// Configuration comes from the environment (a .env file is honored):
//
//	ROUTED_ADDR   listen address, default ":8080"
//	ROUTED_GRAPH  path to the segment CSV, required
//	ROUTED_WEIGHT "travel_time" (default) or "distance"
//
// Endpoints:
//
//	GET  /health  → {"status":"ok","vertices":N,"edges":M}
//	POST /route   → {"start":id,"end":id} → {"weight":w,"path":[...]}
//	                404 when no route exists, 400 on bad ids or body.
//
// The graph is loaded once at startup and treated as read-only afterwards,
// so concurrent requests are safe without further locking.
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/velora-dev/roadroute/core"
	"github.com/velora-dev/roadroute/dijkstra"
	"github.com/velora-dev/roadroute/loader"
)

// RouteRequest is the body of POST /route.
type RouteRequest struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// RouteResponse is the successful answer: total weight and the junction
// sequence from start to end.
type RouteResponse struct {
	Weight float64 `json:"weight"`
	Path   []int64 `json:"path"`
}

// server carries the immutable road graph shared by all handlers.
type server struct {
	graph *core.RoadGraph
}

func (s *server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"vertices": s.graph.VertexCount(),
		"edges":    s.graph.EdgeCount(),
	})
}

func (s *server) handleRoute(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := dijkstra.FindOptimalPath(s.graph, req.Start, req.End)
	if err != nil {
		// Unknown junction ids are a client error; the engine validates
		// them before doing any work.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !res.Reachable {
		c.JSON(http.StatusNotFound, gin.H{"error": "no route between the given junctions"})
		return
	}

	c.JSON(http.StatusOK, RouteResponse{Weight: res.Weight, Path: res.Path})
}

// newRouter wires middleware and endpoints around the loaded graph.
func newRouter(g *core.RoadGraph) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"*"}
	r.Use(cors.New(config))

	s := &server{graph: g}
	r.GET("/health", s.handleHealth)
	r.POST("/route", s.handleRoute)

	return r
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	graphPath := os.Getenv("ROUTED_GRAPH")
	if graphPath == "" {
		log.Fatal("ROUTED_GRAPH must point to a segment CSV")
	}

	kind := loader.WeightTravelTime
	if s := os.Getenv("ROUTED_WEIGHT"); s != "" {
		var err error
		kind, err = loader.ParseWeightKind(s)
		if err != nil {
			log.Fatalf("ROUTED_WEIGHT: %v", err)
		}
	}

	addr := os.Getenv("ROUTED_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Printf("Loading road network from %s...", graphPath)
	g, err := loader.LoadFile(graphPath, loader.Options{Weight: kind})
	if err != nil {
		log.Fatalf("Failed to load road network: %v", err)
	}
	log.Printf("Road network ready: %d junctions, %d directed edges", g.VertexCount(), g.EdgeCount())

	r := newRouter(g)
	log.Printf("routed listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
