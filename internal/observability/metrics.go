package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codegenesis_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// UsersRegistered counts successful account registrations.
	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codegenesis_users_registered_total",
		Help: "Total number of registered user accounts",
	})

	// PostsCreated counts successfully created posts.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codegenesis_posts_created_total",
		Help: "Total number of posts created",
	})

	// CommentsCreated counts successfully created comments and replies.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codegenesis_comments_created_total",
		Help: "Total number of comments created",
	})

	// EngagementEvents counts likes, unlikes and follow changes by action.
	EngagementEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codegenesis_engagement_events_total",
		Help: "Total number of engagement events by action",
	}, []string{"action"})

	// NotificationsEmitted counts stored notifications by event type.
	NotificationsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codegenesis_notifications_emitted_total",
		Help: "Total number of notifications emitted by type",
	}, []string{"type"})
)
