package workers

import (
	"context"
	"testing"

	"festboard/contexts/festival/leaderboard-service/ports"
)

type fakeDocs struct {
	snapshot ports.Snapshot
}

func (f *fakeDocs) Load(_ context.Context) (ports.Snapshot, error) {
	return f.snapshot, nil
}

type capturingWriter struct {
	revision int64
	boards   ports.Leaderboards
	calls    int
}

func (w *capturingWriter) ReplaceStandings(_ context.Context, revision int64, boards ports.Leaderboards) error {
	w.calls++
	w.revision = revision
	w.boards = boards
	return nil
}

func TestProjectorWritesComputedStandings(t *testing.T) {
	docs := &fakeDocs{snapshot: ports.Snapshot{
		Document: ports.Document{
			Categories: []ports.Category{{ID: "c1", Name: "Arts"}},
			Teams:      []ports.Team{{ID: "t1", Name: "Red"}},
			Competitions: []ports.Competition{{
				ID: "k1", CategoryID: "c1", Name: "Quiz", IsPublished: true,
				Results: []ports.Result{{Place: "1st", Name: "Asha", Team: "Red"}},
			}},
		},
		Revision: 7,
	}}
	writer := &capturingWriter{}
	projector := Projector{Docs: docs, Standings: writer}

	if err := projector.RunOnce(context.Background()); err != nil {
		t.Fatalf("projection failed: %v", err)
	}

	if writer.calls != 1 {
		t.Fatalf("expected one write, got %d", writer.calls)
	}
	if writer.revision != 7 {
		t.Fatalf("expected revision 7, got %d", writer.revision)
	}
	if len(writer.boards.Overall) != 1 || writer.boards.Overall[0].Score != 10 {
		t.Fatalf("unexpected projected board: %+v", writer.boards.Overall)
	}
}
