package cli

import (
	"bytes"
	"testing"

	"github.com/orbitlabs/missionctl/internal/domain"
	"github.com/orbitlabs/missionctl/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrintingNotifier_PrintsAndForwards(t *testing.T) {
	// Setup
	var out bytes.Buffer
	next := &testutil.RecordingNotifier{}
	p := &printingNotifier{out: &out, next: next}

	// Execute
	p.Notify(`Task "Dock" is overdue!`, domain.SeverityError)

	// Assert
	assert.Equal(t, "[error] Task \"Dock\" is overdue!\n", out.String())
	assert.Equal(t, `Task "Dock" is overdue!`, next.Last().Message)
}

func TestPrintingNotifier_NilNext(t *testing.T) {
	var out bytes.Buffer
	p := &printingNotifier{out: &out}

	// Must not panic without a queue behind it.
	p.Notify("standalone", domain.SeverityInfo)

	assert.Contains(t, out.String(), "standalone")
}
