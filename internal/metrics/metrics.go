package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RoomsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gamerooms_rooms_created_total",
		Help: "Number of rooms created.",
	})
	PlayersJoined = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gamerooms_players_joined_total",
		Help: "Number of players that joined a room.",
	})
	GamesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gamerooms_games_started_total",
		Help: "Number of games started.",
	})
	GamesFinished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gamerooms_games_finished_total",
		Help: "Number of games finished.",
	})
	StateUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gamerooms_state_updates_total",
		Help: "Number of game state updates applied.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
