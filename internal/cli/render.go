package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/entity"
)

const noGamesPlayed = "No games played yet"

type styles struct {
	cell    lipgloss.Style
	winning lipgloss.Style
	hint    lipgloss.Style
	status  lipgloss.Style
	err     lipgloss.Style
	header  lipgloss.Style
}

func newStyles() styles {
	cell := lipgloss.NewStyle().Width(3).Align(lipgloss.Center)

	return styles{
		cell:    cell,
		winning: cell.Bold(true).Foreground(lipgloss.Color("10")),
		hint:    cell.Faint(true),
		status:  lipgloss.NewStyle().Bold(true).MarginTop(1),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		header:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
	}
}

// renderBoard draws the grid. Empty cells show the number a player types to take them.
func (that styles) renderBoard(game entity.Game) string {
	winning := make(map[int]bool, len(game.WinningLine))
	for _, idx := range game.WinningLine {
		winning[idx] = true
	}

	rows := make([]string, 0, 3)
	for row := range 3 {
		cells := make([]string, 0, 3)
		for col := range 3 {
			idx := row*3 + col

			switch {
			case game.Board[idx] == entity.EmptyCell:
				cells = append(cells, that.hint.Render(strconv.Itoa(idx+1)))
			case winning[idx]:
				cells = append(cells, that.winning.Render(game.Board[idx]))
			default:
				cells = append(cells, that.cell.Render(game.Board[idx]))
			}
		}

		rows = append(rows, strings.Join(cells, "│"))
	}

	grid := strings.Join(rows, "\n───┼───┼───\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(grid)
}

func (that styles) renderStatus(game entity.Game) string {
	x := game.Player(entity.PlayerX)
	o := game.Player(entity.PlayerO)

	score := fmt.Sprintf("%s (X) %d:%d %s (O)", x.Name, x.Wins, o.Wins, o.Name)

	var line string
	switch game.Status {
	case entity.StatusSetup:
		line = "Waiting for players"
	case entity.StatusWon:
		line = fmt.Sprintf("%s wins!", game.Player(game.Winner).Name)
	case entity.StatusDrawn:
		line = "Draw!"
	default:
		line = fmt.Sprintf("%s (%s) to move", game.Player(game.Turn).Name, game.Turn)
	}

	return lipgloss.JoinVertical(lipgloss.Left, score, that.status.Render(line))
}

func (that styles) renderLeaderboard(records []entity.Record) string {
	if len(records) == 0 {
		return noGamesPlayed
	}

	rows := make([][]string, 0, len(records))
	for i, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			record.Name,
			strconv.Itoa(record.Wins),
			strconv.Itoa(record.Losses),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Player", "Wins", "Losses").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return that.header
			}

			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Render()
}

func (that styles) renderError(err error) string {
	return that.err.Render(err.Error())
}
