package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"mergington-activities/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// staticDir is the directory served under /static/.
func NewRouter(activityController *controllers.ActivityController, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()

	// The frontend lives under /static; the root redirects there. The 307 is
	// load-bearing: the frontend and its tests expect a temporary redirect.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	// API Routes
	mux.HandleFunc("GET /activities", activityController.ListActivities)
	mux.HandleFunc("POST /activities/{activityName}/signup", activityController.SignUp)
	mux.HandleFunc("DELETE /activities/{activityName}/unregister", activityController.Unregister)

	// Metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
