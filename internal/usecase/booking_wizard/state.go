package booking_wizard

import (
	"time"

	"github.com/google/uuid"
)

const wizardKeyPrefix = "wizard:"

// Ширина прогресс-бара по шагам, в процентах
const (
	progressDate     = 6
	progressTime     = 30
	progressUserInfo = 75
	progressDone     = 100
)

// newState создает состояние мастера на первом шаге
func newState(now time.Time) *State {
	return &State{
		ID:          uuid.NewString(),
		CurrentStep: StepDate,
		CreatedAt:   now,
	}
}

// wizardKey ключ сессии мастера в хранилище
func wizardKey(id string) string {
	return wizardKeyPrefix + id
}

// nextStep чистая функция перехода линейного мастера
func nextStep(s Step) Step {
	switch s {
	case StepDate:
		return StepTime
	case StepTime:
		return StepUserInfo
	case StepUserInfo:
		return StepDone
	default:
		return StepDone
	}
}

// progressWidth ширина прогресс-бара для шага
func progressWidth(s Step) int {
	switch s {
	case StepDate:
		return progressDate
	case StepTime:
		return progressTime
	case StepUserInfo:
		return progressUserInfo
	default:
		return progressDone
	}
}
