// Package all registers every minigame with the registry. Import it for
// side effects wherever an engine is built.
package all

import (
	_ "github.com/vovakirdan/ramadhan-rush/internal/games/catchtreats"
	_ "github.com/vovakirdan/ramadhan-rush/internal/games/formrows"
	_ "github.com/vovakirdan/ramadhan-rush/internal/games/matchorder"
	_ "github.com/vovakirdan/ramadhan-rush/internal/games/poporspare"
	_ "github.com/vovakirdan/ramadhan-rush/internal/games/rhythmlanes"
	_ "github.com/vovakirdan/ramadhan-rush/internal/games/runstomp"
	_ "github.com/vovakirdan/ramadhan-rush/internal/games/servetables"
	_ "github.com/vovakirdan/ramadhan-rush/internal/games/stayawake"
	_ "github.com/vovakirdan/ramadhan-rush/internal/games/wakespray"
)
