package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postboard_like_toggles_total",
		Help: "The total number of like toggles",
	}, []string{"target", "result"})

	CommentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postboard_comments_created_total",
		Help: "The total number of comments created",
	}, []string{"kind"})

	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "postboard_posts_created_total",
		Help: "The total number of posts created",
	})
)

func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
