package server

const indexHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>SearchLens</title>
  <style>
    body { font-family: "Segoe UI", sans-serif; margin: 0; background: linear-gradient(145deg,#f7fafc,#e9eef7); color: #1f2937; }
    .wrap { max-width: 1100px; margin: 0 auto; padding: 20px; }
    .panel { background: #fff; border-radius: 12px; box-shadow: 0 8px 30px rgba(15,23,42,.08); padding: 16px; margin-bottom: 16px; }
    .row { display: flex; gap: 8px; }
    input[type=text] { flex: 1; padding: 10px; border: 1px solid #cbd5e1; border-radius: 8px; }
    input[type=number] { width: 90px; padding: 10px; border: 1px solid #cbd5e1; border-radius: 8px; }
    button { padding: 10px 16px; border: 0; border-radius: 8px; background: #0f766e; color: #fff; cursor: pointer; }
    button:hover { background: #0d9488; }
    button:disabled { background: #94a3b8; cursor: wait; }
    .cols { display: flex; gap: 16px; align-items: flex-start; }
    .col { flex: 1; min-width: 0; }
    .result { border: 1px solid #e2e8f0; border-radius: 8px; padding: 10px; margin-top: 10px; }
    .result h4 { margin: 0 0 4px; }
    .result a { color: #0f766e; font-size: 13px; word-break: break-all; }
    .result p { margin: 6px 0 0; font-size: 14px; white-space: pre-wrap; }
    .muted { color: #64748b; font-size: 13px; }
    .error { color: #b91c1c; }
    table { width: 100%; border-collapse: collapse; margin-top: 8px; }
    th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid #e2e8f0; font-size: 14px; }
    .badge { display: inline-block; padding: 2px 8px; border-radius: 999px; font-size: 12px; background: #ccfbf1; color: #0f766e; }
    .badge.traditional { background: #fee2e2; color: #b91c1c; }
    ul { margin: 6px 0 0; padding-left: 20px; font-size: 14px; }
    .metrics { font-size: 14px; color: #334155; margin-top: 8px; }
  </style>
</head>
<body>
  <div class="wrap">
    <div class="panel">
      <h2>SearchLens</h2>
      <p class="muted">Run one query through neural search with full content extraction and through a traditional snippet engine, side by side.</p>
      <div class="row">
        <input type="text" id="query" placeholder="e.g. rag pipelines" />
        <input type="number" id="max" min="1" max="10" placeholder="5" />
        <button id="go">Compare</button>
      </div>
      <p id="status" class="muted"></p>
    </div>
    <div class="panel" id="answer-panel" hidden>
      <h3>AI Answer</h3>
      <p id="answer" style="white-space: pre-wrap;"></p>
      <div id="citations" class="muted"></div>
    </div>
    <div class="panel" id="comparison-panel" hidden>
      <h3>Comparison</h3>
      <table id="deltas"></table>
      <p id="depth-note" class="muted"></p>
    </div>
    <div class="cols" id="results" hidden>
      <div class="panel col">
        <h3>Neural + Full Content</h3>
        <div id="rich-metrics" class="metrics"></div>
        <div id="rich-results"></div>
      </div>
      <div class="panel col">
        <h3>Traditional Snippets</h3>
        <div id="trad-metrics" class="metrics"></div>
        <div id="trad-results"></div>
        <h4>What you would still have to do</h4>
        <ul id="workflow"></ul>
        <h4>Why snippets fall short</h4>
        <ul id="problems"></ul>
      </div>
    </div>
  </div>
  <script>
    const $ = (id) => document.getElementById(id);
    const esc = (s) => String(s ?? '').replace(/[&<>"']/g, (c) => ({'&':'&amp;','<':'&lt;','>':'&gt;','"':'&quot;',"'":'&#39;'}[c]));
    const metricsLine = (m) => 'results: ' + m.total_results +
      ' | content: ' + m.total_content_length + ' chars' +
      ' | avg: ' + m.avg_content_length.toFixed(1) +
      ' | highlighted: ' + m.results_with_highlights +
      ' | domains: ' + m.unique_domains;
    const card = (r, body) =>
      '<div class="result"><h4>' + esc(r.title) + '</h4>' +
      '<a href="' + esc(r.url) + '" target="_blank" rel="noopener">' + esc(r.url) + '</a>' +
      '<p>' + esc(body) + '</p></div>';

    async function runCompare() {
      const query = $('query').value.trim();
      if (!query) { $('status').textContent = 'Enter a query first.'; return; }
      $('go').disabled = true;
      $('status').textContent = 'Comparing...';
      const form = new URLSearchParams({ query });
      if ($('max').value) form.set('max_results', $('max').value);
      try {
        const resp = await fetch('/compare', { method: 'POST', body: form });
        const data = await resp.json();
        if (!resp.ok) { $('status').innerHTML = '<span class="error">' + esc(data.error || 'request failed') + '</span>'; return; }
        render(data);
        $('status').textContent = '';
      } catch (err) {
        $('status').innerHTML = '<span class="error">' + esc(err.message) + '</span>';
      } finally {
        $('go').disabled = false;
      }
    }

    function render(data) {
      const answer = data.exa.ai_answer;
      $('answer-panel').hidden = false;
      if (answer.error) {
        $('answer').innerHTML = '<span class="error">' + esc(answer.error) + '</span>';
        $('citations').textContent = '';
      } else {
        $('answer').textContent = answer.answer;
        $('citations').innerHTML = (answer.citation_urls || [])
          .map((u) => '<a href="' + esc(u) + '" target="_blank" rel="noopener">' + esc(u) + '</a>').join('<br>');
      }

      const rows = ['<tr><th>Metric</th><th>Rich</th><th>Traditional</th><th>Ratio</th><th>Advantage</th></tr>'];
      for (const d of data.comparison.deltas) {
        rows.push('<tr><td>' + esc(d.metric) + '</td><td>' + d.rich + '</td><td>' + d.traditional + '</td><td>' +
          d.ratio.toFixed(2) + '</td><td><span class="badge ' + esc(d.advantage) + '">' + esc(d.advantage) + '</span></td></tr>');
      }
      $('comparison-panel').hidden = false;
      $('deltas').innerHTML = rows.join('');
      $('depth-note').textContent = data.comparison.content_depth_note;

      $('results').hidden = false;
      $('rich-metrics').textContent = metricsLine(data.exa.metrics);
      const rich = data.exa.results;
      $('rich-results').innerHTML = (rich.results || [])
        .map((r) => card(r, r.content.length > 600 ? r.content.slice(0, 600) + '…' : r.content)).join('') +
        (rich.error ? '<p class="error">Partial results: ' + esc(rich.error) + '</p>' : '');

      $('trad-metrics').textContent = metricsLine(data.traditional.metrics);
      $('trad-results').innerHTML = (data.traditional.results.results || []).map((r) => card(r, r.snippet)).join('');
      $('workflow').innerHTML = data.traditional.workflow_steps.map((s) => '<li>' + esc(s) + '</li>').join('');
      $('problems').innerHTML = data.traditional.problems.map((p) => '<li>' + esc(p) + '</li>').join('');
    }

    $('go').addEventListener('click', runCompare);
    $('query').addEventListener('keydown', (e) => { if (e.key === 'Enter') runCompare(); });
  </script>
</body>
</html>`
