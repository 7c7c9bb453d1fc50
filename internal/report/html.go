package report

import (
	"html"
	"io"
	"strconv"
	"strings"
)

// WriteHTML renders the run record as a self-contained HTML page.
func WriteHTML(w io.Writer, run RunResult) error {
	var sb strings.Builder

	sb.WriteString(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
	sb.WriteString(`<meta name="viewport" content="width=device-width,initial-scale=1">`)
	sb.WriteString(`<title>` + html.EscapeString(run.Title) + `</title>`)
	sb.WriteString(`<style>
:root { --ok:#0a0; --bad:#b00; --muted:#666; --chip:#eee; --line:#e5e5e5; }
body{font-family:system-ui,Segoe UI,Roboto,Arial,sans-serif;margin:24px;line-height:1.45}
h1{margin:0 0 12px}
h2{margin:0 0 8px;font-size:1.05rem}
.summary{display:flex;gap:12px;align-items:center;margin:12px 0 18px}
.pass{color:var(--ok)} .fail{color:var(--bad)}
.badge{display:inline-block;padding:2px 8px;border-radius:999px;background:var(--chip);font-size:.85rem}
.card{border:1px solid var(--line);border-radius:12px;padding:16px;margin:12px 0}
pre{background:#f8f8f8;padding:12px;border-radius:8px;overflow:auto;max-height:320px;margin:8px 0 0;white-space:pre-wrap}
.muted{color:var(--muted)}
.small{font-size:.85rem}
ul{margin:6px 0}
hr{border:0;border-top:1px solid var(--line);margin:20px 0}
</style></head><body>`)

	sb.WriteString(`<h1>` + html.EscapeString(run.Title) + `</h1>`)
	sb.WriteString(`<div class="summary">`)
	sb.WriteString(`<div>Status: <strong class="` + statusClass(run.Passed) + `">` + tern(run.Passed, "PASS", "FAIL") + `</strong></div>`)
	sb.WriteString(chip("Environment: " + run.Environment))
	sb.WriteString(chip("Run: " + run.RunID))
	sb.WriteString(chip("Started: " + run.StartedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(chip("Duration: " + ms(run.DurationMs)))
	sb.WriteString(chip("Scenarios: " + strconv.Itoa(len(run.Scenarios))))
	sb.WriteString(`</div><hr>`)

	for _, sc := range run.Scenarios {
		sb.WriteString(`<div class="card">`)
		sb.WriteString(`<h2>` + html.EscapeString(sc.Name) + ` — ` + badgeStatus(sc.Passed) + ` ` + chip(ms(sc.DurationMs)) + `</h2>`)

		if len(sc.Steps) > 0 {
			sb.WriteString(`<div class="small muted">Steps completed</div><ul>`)
			for _, step := range sc.Steps {
				sb.WriteString(`<li>` + html.EscapeString(step) + `</li>`)
			}
			sb.WriteString(`</ul>`)
		}

		if len(sc.Errors) > 0 {
			sb.WriteString(`<pre>`)
			for _, e := range sc.Errors {
				sb.WriteString(html.EscapeString(e) + "\n")
			}
			sb.WriteString(`</pre>`)
		} else {
			sb.WriteString(`<div class="small muted">No errors.</div>`)
		}

		if len(sc.Screenshots) > 0 {
			sb.WriteString(`<div class="small muted" style="margin-top:10px;">Screenshots</div><ul>`)
			for _, shot := range sc.Screenshots {
				escaped := html.EscapeString(shot)
				sb.WriteString(`<li><a href="` + escaped + `">` + escaped + `</a></li>`)
			}
			sb.WriteString(`</ul>`)
		}

		if sc.PageURL != "" {
			sb.WriteString(`<div class="small muted" style="margin-top:10px;">Page URL</div>`)
			sb.WriteString(`<pre>` + html.EscapeString(sc.PageURL) + `</pre>`)
		}
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</body></html>`)
	_, err := io.WriteString(w, sb.String())
	return err
}

func statusClass(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

func badgeStatus(ok bool) string {
	if ok {
		return `<span class="badge pass">PASS</span>`
	}
	return `<span class="badge fail">FAIL</span>`
}

func chip(text string) string {
	return `<span class="badge">` + html.EscapeString(text) + `</span>`
}

func ms(v float64) string { return strconv.FormatFloat(v, 'f', 0, 64) + " ms" }

func tern(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
