package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/apperror"
)

func (that *Server) handleConnect(ctx context.Context, sender *client, msg *Message) error {
	game := that.game.GetGame(ctx)

	leaderboard, err := that.game.GetLeaderboard(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to get leaderboard: %w", err)
	}

	payload := Payload{
		ClientID:    sender.id,
		Game:        &game,
		Leaderboard: leaderboard,
	}

	if err = sender.send(msg.Action, payload); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	that.logger.Info("successfully connected client", "client", sender.id)

	return nil
}

func (that *Server) handleSetup(ctx context.Context, sender *client, msg *Message) error {
	var payloadReq Payload
	if err := decodePayload(msg, &payloadReq); err != nil {
		that.sendError(sender, msg.Action, "invalid payload")
		return err
	}

	game, err := that.game.SetupGame(ctx, payloadReq.PlayerX, payloadReq.PlayerO)
	if err != nil {
		if sendErr := sender.send(msg.Action, Payload{Game: &game, Error: err.Error()}); sendErr != nil {
			return fmt.Errorf("failed to send response: %w", sendErr)
		}

		return nil
	}

	that.broadcast(msg.Action, Payload{Game: &game})

	return nil
}

// handleTurn broadcasts an applied move to everybody. A rejected move is reported to the
// sender only, together with the unchanged game.
func (that *Server) handleTurn(ctx context.Context, sender *client, msg *Message) error {
	var payloadReq Payload
	if err := decodePayload(msg, &payloadReq); err != nil || payloadReq.Cell == nil {
		that.sendError(sender, msg.Action, "cell is required")
		return err
	}

	result, err := that.game.MakeTurn(ctx, *payloadReq.Cell)
	if result == nil {
		that.sendError(sender, msg.Action, "failed to make turn")
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if errors.Is(err, apperror.ErrInvalidMove) {
		payload := Payload{Game: &result.Game, Error: err.Error()}
		if sendErr := sender.send(msg.Action, payload); sendErr != nil {
			return fmt.Errorf("failed to send response: %w", sendErr)
		}

		return nil
	}

	that.broadcast(msg.Action, Payload{Game: &result.Game, Leaderboard: result.Leaderboard})

	if err != nil {
		that.sendError(sender, msg.Action, err.Error())
		return err
	}

	return nil
}

func (that *Server) handleRestart(ctx context.Context, _ *client, msg *Message) error {
	game := that.game.RestartGame(ctx)
	that.broadcast(msg.Action, Payload{Game: &game})

	return nil
}

func (that *Server) handleState(ctx context.Context, sender *client, msg *Message) error {
	game := that.game.GetGame(ctx)

	if err := sender.send(msg.Action, Payload{Game: &game}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

func (that *Server) handleLeaderboard(ctx context.Context, sender *client, msg *Message) error {
	var payloadReq Payload
	if err := decodePayload(msg, &payloadReq); err != nil {
		that.sendError(sender, msg.Action, "invalid payload")
		return err
	}

	leaderboard, err := that.game.GetLeaderboard(ctx, payloadReq.Limit)
	if err != nil {
		that.sendError(sender, msg.Action, err.Error())
		return nil
	}

	if err = sender.send(msg.Action, Payload{Leaderboard: leaderboard}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

// decodePayload accepts a missing payload as an empty one.
func decodePayload(msg *Message, payload *Payload) error {
	if len(msg.Payload) == 0 {
		return nil
	}

	if err := json.Unmarshal(msg.Payload, payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return nil
}

// isMalformed reports a frame that arrived whole but did not decode. A truncated document
// surfaces as io.ErrUnexpectedEOF; the rest of the frame is dropped by the next read.
func isMalformed(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF)
}
