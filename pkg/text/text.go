package text

import (
	"github.com/dustin/go-humanize"
	"github.com/enescakir/emoji"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	Ellipsis = "…"
)

var (
	EmojiWishlist = emoji.RedHeart.String()
	EmojiImage    = emoji.FramedPicture.String()
	EmojiCart     = emoji.ShoppingCart.String()
)

// FormatPrice renders a price with thousands separators and exactly two
// decimals, e.g. 1234.5 becomes "1,234.50".
func FormatPrice(price float64) string {
	return humanize.FormatFloat("#,###.##", price)
}

func TruncateWithTail(txt string, width uint, tail string) string {
	return truncate.StringWithTail(txt, width, tail)
}

// Truncate shortens txt to width cells, ending in an ellipsis when cut.
func Truncate(txt string, width int) string {
	if width <= 0 {
		return ""
	}
	return TruncateWithTail(txt, uint(width), Ellipsis)
}

// Column truncates txt to width cells and pads it with spaces to exactly
// width, counting wide runes as two cells.
func Column(txt string, width int) string {
	return runewidth.FillRight(Truncate(txt, width), width)
}
