package model

import (
	"fmt"
	"strings"

	"github.com/byxorna/storefront/pkg/app"
	"github.com/byxorna/storefront/pkg/store"
	"github.com/byxorna/storefront/pkg/text"
	"github.com/byxorna/storefront/pkg/types/v1"
	"github.com/byxorna/storefront/pkg/ui"
	"github.com/charmbracelet/lipgloss"
)

const (
	cardWidth  = 30 // including padding, excluding border
	cardGap    = 1
	minColumns = 1

	loadingText = "Loading products" + text.Ellipsis
	emptyText   = "No products match the selected filters."
)

// Renderer redraws the product cards whenever the visible window or the
// loading flag of its State is written.
type Renderer struct {
	state *app.State
	subs  []*store.Subscription
	width int

	content string
	count   int
	renders int
}

func NewRenderer(width int) *Renderer {
	return &Renderer{width: width}
}

// Attach subscribes to s. Attaching to the same state again does nothing, so
// one write never renders twice. Attaching to another state detaches first.
func (r *Renderer) Attach(s *app.State) {
	if r.state == s && len(r.subs) > 0 {
		return
	}
	r.Detach()
	r.state = s
	r.subs = []*store.Subscription{
		s.Visible.Subscribe(r.Render),
		s.Loading.Subscribe(r.Render),
	}
	r.Render()
}

func (r *Renderer) Detach() {
	for _, sub := range r.subs {
		sub.Unsubscribe()
	}
	r.subs = nil
}

// SetWidth changes the layout width and redraws.
func (r *Renderer) SetWidth(w int) {
	if w == r.width {
		return
	}
	r.width = w
	if r.state != nil {
		r.Render()
	}
}

// Content is the most recent drawing.
func (r *Renderer) Content() string { return r.content }

// Count is the results counter: how many products are shown, not how many
// matched.
func (r *Renderer) Count() int { return r.count }

// Renders is how many times the renderer has drawn.
func (r *Renderer) Renders() int { return r.renders }

func (r *Renderer) Render() {
	r.renders++

	if r.state.Loading.Read() {
		r.content = ui.LoadingStyle.Render(loadingText)
		return
	}

	visible := r.state.Visible.Read()
	r.count = len(visible)
	if len(visible) == 0 {
		r.content = ui.SubtleStyle.Render(emptyText)
		return
	}

	columns := max(minColumns, (r.width+cardGap)/(cardWidth+2+cardGap))
	rows := make([]string, 0, len(visible)/columns+1)
	for start := 0; start < len(visible); start += columns {
		end := min(start+columns, len(visible))
		cards := make([]string, 0, 2*(end-start))
		for i, p := range visible[start:end] {
			if i > 0 {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, card(p))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	r.content = strings.Join(rows, "\n")
}

func card(p v1.Product) string {
	inner := cardWidth - ui.CardStyle.GetHorizontalPadding()

	image := text.EmojiImage + " " + text.Truncate(p.Image, inner-3)
	title := ui.CardTitleStyle.Render(text.Truncate(p.Title, inner))

	price := ui.PriceStyle.Render(fmt.Sprintf("$%s", text.FormatPrice(p.Price)))
	wish := ui.WishlistStyle.Render(text.EmojiWishlist)
	gap := max(1, inner-lipgloss.Width(price)-lipgloss.Width(wish))
	footer := price + strings.Repeat(" ", gap) + wish

	return ui.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			ui.SubtleStyle.Render(image),
			title,
			footer,
		))
}
