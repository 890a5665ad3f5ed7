// Package navigate drives the interactive session: it renders the current
// document as an indexed menu, reads commands, and dispatches selections to
// the loader, the media player, or the web browser.
package navigate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"w3u-navigator/internal/classify"
	"w3u-navigator/internal/loader"
	"w3u-navigator/internal/model"
	"w3u-navigator/internal/player"
)

// DocumentLoader is the load capability the navigator descends through.
type DocumentLoader interface {
	Load(ctx context.Context, url string) (*loader.Outcome, error)
}

// frame is one visited document. The stack replaces the re-entrant
// navigation calls of earlier designs: descend pushes, back pops, and the
// render/input step always runs against the top frame, so call depth stays
// constant no matter how long the session runs.
type frame struct {
	url string
	doc *model.Document
}

// Navigator holds the frame stack and a one-shot status message shown on
// the next render only.
type Navigator struct {
	Loader   DocumentLoader
	Launcher player.Launcher
	Out      io.Writer

	// Pause blocks until the user acknowledges a notice. Defaults to a
	// no-op; main wires the terminal gate.
	Pause func()
	// ClearScreen enables the erase-display escape before each render.
	ClearScreen bool

	in     *bufio.Scanner
	stack  []frame
	status string
}

// New returns a Navigator reading commands from in and rendering to out.
func New(l DocumentLoader, launcher player.Launcher, in io.Reader, out io.Writer) *Navigator {
	return &Navigator{
		Loader:   l,
		Launcher: launcher,
		Out:      out,
		Pause:    func() {},
		in:       bufio.NewScanner(in),
	}
}

// History returns the URLs of the current frame stack, root first.
func (n *Navigator) History() []string {
	urls := make([]string, len(n.stack))
	for i, f := range n.stack {
		urls[i] = f.url
	}
	return urls
}

// Run loads the start document and drives the command loop until the user
// quits or input ends. The root load failing is the only load error that
// ends the session.
func (n *Navigator) Run(ctx context.Context, startURL string) error {
	url, _ := classify.Resolve(startURL)
	out, err := n.Loader.Load(ctx, url)
	if err != nil {
		return err
	}
	if out.MediaPlaylist {
		n.offerPlayer(url, out.MediaEntries)
		return nil
	}
	n.stack = []frame{{url: url, doc: out.Doc}}
	n.status = cacheStatus(out)

	for {
		top := n.stack[len(n.stack)-1]
		opts := n.render(top.doc)
		line, ok := n.readLine()
		if !ok {
			return nil
		}
		switch cmd := strings.ToLower(strings.TrimSpace(line)); cmd {
		case "q":
			return nil
		case "b", "":
			n.back()
		default:
			n.choose(ctx, cmd, opts)
		}
	}
}

// back pops the current frame so the page that was current before it becomes
// current again. A root-only stack never pops.
func (n *Navigator) back() {
	if len(n.stack) > 1 {
		n.stack = n.stack[:len(n.stack)-1]
		return
	}
	n.notice("No parent directory.")
}

// choose resolves a numeric selection against the option list and dispatches
// by URL classification. Out-of-range or non-numeric input is a local
// notice; an entry without a URL is a no-op.
func (n *Navigator) choose(ctx context.Context, cmd string, opts []Option) {
	idx, err := strconv.Atoi(cmd)
	if err != nil || idx < 0 || idx >= len(opts) {
		n.notice("Invalid choice. Try again.")
		return
	}
	sel := opts[idx]
	if sel.URL == "" {
		return
	}
	url, kind := classify.Resolve(sel.URL)
	switch kind {
	case classify.KindDocument:
		n.descend(ctx, url)
	case classify.KindMedia:
		fmt.Fprintf(n.Out, "Opening %s in the media player...\n", url)
		if err := n.Launcher.Play(url); err != nil {
			n.notice(err.Error())
		}
	case classify.KindWeb:
		fmt.Fprintf(n.Out, "Opening %s in the default web browser...\n", url)
		if err := n.Launcher.OpenWeb(url); err != nil {
			n.notice(err.Error())
		}
	}
}

// descend loads url and pushes a frame on success. Load failures leave the
// stack unchanged and return the user to the current page after a notice.
func (n *Navigator) descend(ctx context.Context, url string) {
	out, err := n.Loader.Load(ctx, url)
	if err != nil {
		n.notice(fmt.Sprintf("Error fetching %s: %v", url, err))
		return
	}
	if out.MediaPlaylist {
		n.offerPlayer(url, out.MediaEntries)
		return
	}
	n.stack = append(n.stack, frame{url: url, doc: out.Doc})
	n.status = cacheStatus(out)
}

// offerPlayer handles a fetched M3U playlist: not an error, but not a tree
// document either. The user decides whether it goes to the media player.
func (n *Navigator) offerPlayer(url string, entries int) {
	desc := "an M3U playlist"
	if entries > 0 {
		desc = fmt.Sprintf("an M3U playlist with %d entries", entries)
	}
	fmt.Fprintf(n.Out, "The file at %s appears to be %s. Open it in the media player? (y/n): ", url, desc)
	line, ok := n.readLine()
	if !ok || strings.ToLower(strings.TrimSpace(line)) != "y" {
		return
	}
	fmt.Fprintf(n.Out, "Opening %s in the media player...\n", url)
	if err := n.Launcher.Play(url); err != nil {
		n.notice(err.Error())
	}
}

func (n *Navigator) notice(msg string) {
	fmt.Fprintln(n.Out, msg)
	n.Pause()
}

func (n *Navigator) readLine() (string, bool) {
	if !n.in.Scan() {
		return "", false
	}
	return n.in.Text(), true
}

func cacheStatus(out *loader.Outcome) string {
	if out.CachePath == "" {
		return ""
	}
	return fmt.Sprintf("new file saved in cache: %s (%s)",
		out.CachePath, humanize.Bytes(uint64(out.CacheBytes)))
}
