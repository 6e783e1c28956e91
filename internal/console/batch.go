package console

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/sker65/headsup/client"
)

// reportBatch turns a batch tally into one notification: a warning when any
// request failed, success otherwise.
func (a *App) reportBatch(noun string, result client.BatchResult) {
	for _, id := range result.Failed {
		log.Debug().Err(result.Errors[id]).Str("id", id).Str("kind", noun).Msg("batch delete failed")
	}
	deleted, failed := len(result.Succeeded), len(result.Failed)
	if failed > 0 {
		a.Notifier.Warning(fmt.Sprintf("Deleted %d %s, %d failed", deleted, noun, failed))
		return
	}
	a.Notifier.Success(fmt.Sprintf("Deleted %d %s", deleted, noun))
}
