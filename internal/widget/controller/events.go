package controller

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/betona1/cafe24-staff-review/internal/widget/dom"
	"github.com/betona1/cafe24-staff-review/internal/widget/render"
	"github.com/betona1/cafe24-staff-review/internal/widget/review"
)

const cardSelector = ".srw-review-card"

// bind attaches the delegated listeners to the container. The container is
// never replaced, so the listeners survive every full and partial render.
// Callers hold c.mu.
func (c *Controller) bind() {
	c.offs = append(c.offs,
		c.container.On("click", c.onClick),
		c.container.On("change", c.onChange),
	)
}

func (c *Controller) onClick(ev dom.Event) {
	target := ev.Target
	if target == nil {
		return
	}
	if tab := target.Closest("." + render.ClassFilterTab); tab != nil {
		c.selectFilter(tab)
		return
	}
	if btn := target.Closest("." + render.ClassPageButton); btn != nil {
		c.selectPage(btn)
		return
	}
	if btn := target.Closest("." + render.ClassMoreButton); btn != nil {
		c.expand(btn)
		return
	}
	if img := target.Closest("." + render.ClassGalleryThumb + ", ." + render.ClassThumbnail); img != nil {
		if url, ok := img.Attr(render.AttrFullURL); ok && url != "" {
			c.lightbox.Open(url)
		}
	}
}

func (c *Controller) onChange(ev dom.Event) {
	if ev.Target == nil || !ev.Target.HasClass(render.ClassSortSelect) {
		return
	}
	value := ev.Target.Value()

	c.mu.Lock()
	sort, ok := review.ParseSort(value)
	if ok {
		ok = c.state.SetSort(sort)
	}
	c.mu.Unlock()

	if !ok {
		c.log().Debug("ignoring unknown sort", zap.String("sort", value))
		return
	}
	c.spawn(1)
}

// selectFilter switches between all and photo reviews. The tab classes
// update immediately, before the reload completes.
func (c *Controller) selectFilter(tab dom.Element) {
	filter, _ := tab.Attr(render.AttrFilter)
	photoOnly := filter == render.FilterPhoto

	c.mu.Lock()
	c.state.SetPhotoOnly(photoOnly)
	for _, t := range c.container.QuerySelectorAll("." + render.ClassFilterTab) {
		f, _ := t.Attr(render.AttrFilter)
		t.ToggleClass(render.ClassActive, render.TabActive(f, photoOnly))
	}
	c.mu.Unlock()

	c.spawn(1)
}

func (c *Controller) selectPage(btn dom.Element) {
	if _, disabled := btn.Attr("disabled"); disabled {
		return
	}
	raw, _ := btn.Attr(render.AttrPage)
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return
	}
	c.spawn(page)
	c.container.ScrollIntoView()
}

// expand reveals the full review text. It only mutates the card.
func (c *Controller) expand(btn dom.Element) {
	c.mu.Lock()
	defer c.mu.Unlock()

	card := btn.Closest(cardSelector)
	if card == nil {
		return
	}
	content := card.QuerySelector("." + render.ClassContent)
	if content == nil {
		return
	}
	full, ok := content.Attr(render.AttrFullText)
	if !ok {
		return
	}
	content.SetText(full)
	content.RemoveClass(render.ClassCollapsed)
	btn.Remove()
}
