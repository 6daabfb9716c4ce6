package server

import (
	"errors"
	"net/http"
	"rpsplus/communication"
	"rpsplus/gamemaster"
	"rpsplus/judge"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
)

// ServerCommunicator exposes the game master's matches over HTTP.
type ServerCommunicator struct {
	gm  *gamemaster.GameMaster
	app *fiber.App
}

// NewServerCommunicator initializes the HTTP routes.
func NewServerCommunicator(gm *gamemaster.GameMaster) *ServerCommunicator {
	sc := &ServerCommunicator{
		gm:  gm,
		app: fiber.New(fiber.Config{DisableStartupMessage: true}),
	}
	sc.app.Use(recover.New())
	sc.app.Post("/matches", sc.handleCreateMatch)
	sc.app.Get("/matches/:id", sc.handleGetMatch)
	sc.app.Delete("/matches/:id", sc.handleDeleteMatch)
	sc.app.Post("/matches/:id/rounds", sc.handlePlayRound)
	return sc
}

func (sc *ServerCommunicator) App() *fiber.App {
	return sc.app
}

// Start blocks serving on addr until Shutdown is called.
func (sc *ServerCommunicator) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("match server listening")
	return sc.app.Listen(addr)
}

func (sc *ServerCommunicator) Shutdown() error {
	return sc.app.Shutdown()
}

func (sc *ServerCommunicator) handleCreateMatch(c *fiber.Ctx) error {
	m := sc.gm.NewMatch()
	return c.Status(http.StatusCreated).JSON(communication.MatchResponse{ID: m.ID(), State: m.Snapshot()})
}

func (sc *ServerCommunicator) handleGetMatch(c *fiber.Ctx) error {
	m, err := sc.gm.Match(c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(communication.MatchResponse{ID: m.ID(), State: m.Snapshot()})
}

func (sc *ServerCommunicator) handleDeleteMatch(c *fiber.Ctx) error {
	if err := sc.gm.Delete(c.Params("id")); err != nil {
		return sendError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (sc *ServerCommunicator) handlePlayRound(c *fiber.Ctx) error {
	var req communication.RoundRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(communication.ErrorResponse{Error: "bad request: " + err.Error()})
	}

	reply, state, err := sc.gm.PlayRound(c.UserContext(), c.Params("id"), req.Input)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(communication.RoundResponse{Reply: reply, State: state})
}

func sendError(c *fiber.Ctx, err error) error {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, gamemaster.ErrMatchNotFound):
		status = http.StatusNotFound
	case errors.Is(err, judge.ErrUnavailable):
		status = http.StatusServiceUnavailable
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("round failed")
	}
	return c.Status(status).JSON(communication.ErrorResponse{Error: err.Error()})
}
