package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gofolio/internal/scene"
	"github.com/philipparndt/gofolio/pkg/carousel"
	"github.com/philipparndt/gofolio/pkg/config"
	"github.com/philipparndt/gofolio/pkg/content"
	"github.com/philipparndt/gofolio/pkg/pattern"
)

// CarouselState holds the mounted engine and the GPU models of its items
type CarouselState struct {
	engine      *carousel.Engine
	unsubscribe func()
	models      []ItemModel
}

// ItemModel is the raylib model drawn for one carousel item
type ItemModel struct {
	model    rl.Model
	uploaded bool
	state    carousel.AssetState // asset state the model was built for
}

// BackgroundState holds the marquee layer
type BackgroundState struct {
	layer   pattern.Layer
	started time.Time
}

// InfoState holds the experience info panel
type InfoState struct {
	index int
	alpha float32 // fades out while the carousel is between items
}

// InteractionState holds mouse and touch state
type InteractionState struct {
	pointerDown bool
	touching    bool
	width       int32
	height      int32
}

// FileWatchState holds content hot reload state
type FileWatchState struct {
	reloader *scene.Reloader
}

// UIState holds UI-related state
type UIState struct {
	font       rl.Font
	prevButton rl.Rectangle
	nextButton rl.Rectangle
}

// App is the raylib front end
type App struct {
	Config      config.Config
	Content     *content.Content
	Carousel    CarouselState
	Background  BackgroundState
	Info        InfoState
	Interaction InteractionState
	FileWatch   FileWatchState
	UI          UIState
}
