package systems

import (
	"fmt"
	"log"

	"github.com/automoto/tundra/components"
	"github.com/yohamta/donburi"
)

// guard runs fn for one game object and turns an error or a panic into a log
// line, so a single malformed object never stops the rest of the tick.
func guard(subsystem string, entry *donburi.Entry, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[%s] entity %s: recovered: %v", subsystem, describe(entry), r)
		}
	}()
	if err := fn(); err != nil {
		log.Printf("[%s] entity %s: %v", subsystem, describe(entry), err)
	}
}

func describe(entry *donburi.Entry) string {
	if !entry.HasComponent(components.Identity) {
		return fmt.Sprintf("entry %v", entry.Entity())
	}
	id := components.Identity.Get(entry)
	return fmt.Sprintf("%s (%s)", id.ID, id.Type)
}
