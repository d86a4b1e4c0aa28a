package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// AgentConfig describes one side of a match.
type AgentConfig struct {
	ID         int
	Kind       string // alphabeta, mcts or random
	Goroutines int
	Duration   time.Duration
	Depth      int
	Episodes   int
	Cutoff     int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	runID   string
	baseDir string
}

// NewWriter creates <root>/<name>-<timestamp>-<run id> for the files of one
// experiment run.
func NewWriter(root, name string) (*Writer, error) {
	runID := uuid.NewString()[:8]
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, fmt.Sprintf("%s-%s-%s", name, timestamp, runID))
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{runID: runID, baseDir: baseDir}, nil
}

func (w *Writer) RunID() string {
	return w.runID
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, c := range configs {
		rows = append(rows, []string{
			w.runID,
			strconv.Itoa(c.ID),
			c.Kind,
			strconv.Itoa(c.Goroutines),
			c.Duration.String(),
			strconv.Itoa(c.Depth),
			strconv.Itoa(c.Episodes),
			strconv.Itoa(c.Cutoff),
		})
	}
	header := []string{"run", "id", "kind", "goroutines", "duration", "depth", "episodes", "cutoff"}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			w.runID,
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Agent1),
			strconv.Itoa(r.Agent2),
			strconv.Itoa(r.StartingPlayer),
			strconv.Itoa(r.Outcome),
			r.Reason,
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.Duration.String(),
			strconv.Itoa(r.TotalMoves),
		})
	}
	header := []string{"run", "id", "agent1", "agent2", "starting_player", "outcome", "reason", "start_time", "end_time", "duration", "total_moves"}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			w.runID,
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			strconv.Itoa(r.Player),
			r.Move,
			r.Duration.String(),
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.Depth),
			strconv.FormatBool(r.Completed),
			strconv.Itoa(r.Episodes),
			strconv.Itoa(r.FullPlayouts),
		})
	}
	header := []string{"run", "game", "step", "player", "move", "duration", "nodes", "depth", "completed", "episodes", "full_playouts"}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
