package utils

import (
	"testing"

	"github.com/Fantom-foundation/Tally/logger"
	"go.uber.org/mock/gomock"
)

func TestProgressTracker_ReportsEveryThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)

	gomock.InOrder(
		log.EXPECT().Infof(gomock.Any(), "tokens", uint64(10), gomock.Any(), "tokens", gomock.Any(), gomock.Any()),
		log.EXPECT().Infof(gomock.Any(), "tokens", uint64(20), gomock.Any(), "tokens", gomock.Any(), gomock.Any()),
		log.EXPECT().Noticef("Read %d %v in %vh %vm %vs", uint64(25), "tokens", gomock.Any(), gomock.Any(), gomock.Any()),
	)

	pt := NewProgressTracker("tokens", 10, log)
	for i := 0; i < 25; i++ {
		pt.Step()
	}
	pt.Finish()

	if pt.Steps() != 25 {
		t.Fatalf("expected 25 steps, got %v", pt.Steps())
	}
}
