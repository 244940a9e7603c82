package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/battleship-solver/internal/solver"
)

const (
	watchRound  = "round"
	watchResult = "result"
)

func (h GameHandler) writeWS(conn *websocket.Conn, msg WatchMessage) error {
	if err := conn.SetWriteDeadline(time.Now().Add(h.ws.WriteTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}

// Watch plays a game live over a websocket: one message per round, then the
// result, then a normal close. Nothing is stored.
func (h GameHandler) Watch(w http.ResponseWriter, r *http.Request) {
	params, err := ParseGameParams(r.URL.Query(), h.defaults)
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}
	var (
		conn     *websocket.Conn
		writeErr error
	)
	observer := solver.ObserverFunc(func(_ *solver.Game, round solver.Round) {
		if writeErr == nil {
			writeErr = h.writeWS(conn, WatchMessage{Type: watchRound, Round: &round})
		}
	})
	g, err := h.newGame(params, solver.WithObserver(observer))
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusUnprocessableEntity, err)
		return
	}

	conn, err = h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("could not upgrade connection", slog.Any("error", err))
		return
	}

	// control frames are only processed while reading
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()
	defer func() {
		conn.Close()
		<-readDone
	}()

	var (
		result  = WatchResult{Sunk: []solver.Sinking{}}
		playErr error
	)
	for !g.Over() && writeErr == nil {
		round, err := g.Step()
		if round.Sunk != nil {
			result.Sunk = append(result.Sunk, *round.Sunk)
		}
		if err != nil {
			playErr = err
			break
		}
	}
	if writeErr != nil {
		h.logger.Debug("watcher went away", slog.Any("error", writeErr))
		return
	}

	result.Outcome = outcome(playErr)
	result.Won = playErr == nil
	result.Rounds = g.Played()
	if playErr != nil {
		result.Error = playErr.Error()
	}
	if err := h.writeWS(conn, WatchMessage{Type: watchResult, Result: &result}); err != nil {
		h.logger.Debug("unable to send result", slog.Any("error", err))
		return
	}

	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over")
	deadline := time.Now().Add(h.ws.WriteTimeout)
	if err := conn.WriteControl(websocket.CloseMessage, closeMsg, deadline); err != nil {
		return
	}
	conn.SetReadDeadline(deadline)
	<-readDone
}
