package web

import (
	"fmt"
	"html"
	"strings"
	"time"

	"popular-videos/domain/model"
	"popular-videos/infrastructure/utils"
)

const (
	// FragmentPath serves the content area for the loader script.
	FragmentPath = "/popular/view"
	// PagePath serves the fully rendered page for clients without JavaScript.
	PagePath = "/popular"

	fetchFailedReason = "Failed to fetch videos"
)

// Escape ensures upstream text cannot break the markup.
func Escape(s string) string {
	return html.EscapeString(s)
}

// Render renders the content area for state.
func Render(state State, now time.Time) string {
	var b strings.Builder
	switch s := state.(type) {
	case Failed:
		renderFailed(&b, s.Reason)
	case Loaded:
		renderLoaded(&b, s.Videos, now)
	default:
		renderLoading(&b)
	}
	return b.String()
}

// RenderPage wraps the content area for state in a complete document. A page in the
// Loading state fetches its content from FragmentPath once the script runs.
func RenderPage(state State, now time.Time) string {
	_, loading := state.(Loading)

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>YouTube Popular This Week</title>
<style>`)
	b.WriteString(RenderStyle())
	b.WriteString(`</style></head><body>`)

	fmt.Fprintf(&b, `<main id="content" class="page" data-autoload="%t">`, loading)
	b.WriteString(Render(state, now))
	b.WriteString(`</main>`)
	if loading {
		fmt.Fprintf(&b, `<noscript><p class="center"><a class="button" href="%s">Show videos</a></p></noscript>`, PagePath)
	}

	fmt.Fprintf(&b, `<template id="fetch-failed">%s</template>`, Render(Failed{Reason: fetchFailedReason}, now))
	appendLoaderScript(&b)
	b.WriteString(`</body></html>`)
	return b.String()
}

func renderLoading(b *strings.Builder) {
	b.WriteString(`<div class="state state-loading" role="status">`)
	b.WriteString(`<div class="spinner"></div><p class="muted">Loading popular videos...</p>`)
	b.WriteString(`</div>`)
}

func renderFailed(b *strings.Builder, reason string) {
	b.WriteString(`<div class="state"><div class="panel state-failed">`)
	b.WriteString(`<h2 class="error-title">Error</h2>`)
	fmt.Fprintf(b, `<p class="muted">%s</p>`, Escape(reason))
	fmt.Fprintf(b, `<a class="button wide" href="%s" data-action="reload">Try Again</a>`, PagePath)
	b.WriteString(`</div></div>`)
}

func renderLoaded(b *strings.Builder, videos []model.VideoSummary, now time.Time) {
	b.WriteString(`<header class="hero">`)
	b.WriteString(`<h1>YouTube Popular This Week</h1>`)
	b.WriteString(`<p class="muted lead">Discover the most popular videos from the past 7 days</p>`)
	fmt.Fprintf(b, `<a class="button" href="%s" data-action="reload">Refresh Videos</a>`, PagePath)
	b.WriteString(`</header>`)

	if len(videos) == 0 {
		b.WriteString(`<p class="muted center empty">No videos found for this week.</p>`)
		return
	}

	b.WriteString(`<section class="grid">`)
	for i, v := range videos {
		renderCard(b, i+1, v, now)
	}
	b.WriteString(`</section>`)
}

func renderCard(b *strings.Builder, rank int, v model.VideoSummary, now time.Time) {
	fmt.Fprintf(b, `<a class="card" href="%s" target="_blank" rel="noopener noreferrer">`, Escape(v.WatchURL()))

	b.WriteString(`<div class="thumb">`)
	if v.Thumbnail.URL != "" {
		fmt.Fprintf(b, `<img src="%s" alt="%s" loading="lazy">`, Escape(v.Thumbnail.URL), Escape(v.Title))
	} else {
		b.WriteString(`<div class="thumb-placeholder"></div>`)
	}
	fmt.Fprintf(b, `<span class="rank">#%d</span><span class="watch">Watch</span>`, rank)
	b.WriteString(`</div>`)

	b.WriteString(`<div class="card-body">`)
	fmt.Fprintf(b, `<h3 class="title">%s</h3>`, Escape(v.Title))
	fmt.Fprintf(b, `<p class="muted channel">%s</p>`, Escape(v.ChannelName))
	b.WriteString(`<div class="stats">`)
	fmt.Fprintf(b, `<span class="views">%s</span>`, Escape(utils.FormatViewCount(v.ViewCount)))
	fmt.Fprintf(b, `<span class="likes">%s</span>`, Escape(utils.FormatCount(v.LikeCount, "likes")))
	fmt.Fprintf(b, `<span class="comments">%s</span>`, Escape(utils.FormatCount(v.CommentCount, "comments")))
	b.WriteString(`</div>`)
	fmt.Fprintf(b, `<p class="muted published">%s</p>`, Escape(utils.FormatPublishedDate(v.PublishedAt, now)))
	b.WriteString(`</div></a>`)
}

// appendLoaderScript wires Refresh / Try Again to an in-place reload of the content area.
func appendLoaderScript(b *strings.Builder) {
	loading := Render(Loading{}, time.Time{})
	fmt.Fprintf(b, `<script>
(function(){
  var content = document.getElementById('content');
  var failed = document.getElementById('fetch-failed').innerHTML;
  var loading = %q;
  var busy = false;
  function load(){
    if (busy) { return; }
    busy = true;
    content.innerHTML = loading;
    fetch(%q, {headers: {'Accept': 'text/html'}})
      .then(function(r){ return r.text(); })
      .then(function(html){ content.innerHTML = html; })
      .catch(function(){ content.innerHTML = failed; })
      .then(function(){ busy = false; });
  }
  document.addEventListener('click', function(e){
    var el = e.target.closest && e.target.closest('[data-action="reload"]');
    if (el) { e.preventDefault(); load(); }
  });
  if (content.getAttribute('data-autoload') === 'true') { load(); }
})();
</script>`, loading, FragmentPath)
}
