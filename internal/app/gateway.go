package app

import (
	"context"
	"os"

	"hr-dashboard/internal/client"
	"hr-dashboard/internal/gateway"
	"hr-dashboard/internal/shared/debounce"
	"hr-dashboard/internal/shared/listquery"

	"github.com/gin-gonic/gin"
)

// BuildGateway merakit dashboard BFF: client ke backend API, session
// holder, search coordinator, dan route gating. Tidak ada koneksi DB;
// gateway hanya bicara HTTP ke backend.
func BuildGateway(router *gin.Engine) (func(), error) {
	apiBaseURL := os.Getenv("API_BASE_URL")
	if apiBaseURL == "" {
		apiBaseURL = "http://localhost:3000"
	}

	apiClient := client.New(apiBaseURL)
	sessions := client.NewSessionHolder()

	search := gateway.NewSearchCoordinator(debounce.DefaultWindow,
		func(ctx context.Context, q listquery.Query) (gateway.ListViewState, error) {
			result, err := apiClient.ListEmployees(ctx, sessions.Current(), q)
			if err != nil {
				return gateway.ListViewState{}, err
			}
			return gateway.NewListViewState(result, q.SortBy, q.SortOrder, q.Search), nil
		},
	)

	handler := gateway.NewHandler(apiClient, sessions, search)
	gateway.RegisterRoutes(router, handler)

	return search.Stop, nil
}
