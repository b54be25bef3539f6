package handlers

import (
	"net/http"
)

// GenerationPage serves GET /generation — a local playground page for
// manually exercising POST /generate during development.
func (h *Handler) GenerationPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(generationPageHTML))
}

const generationPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Gemini Image Generator</title>
  <style>
    * { box-sizing: border-box; }
    body { font-family: system-ui, sans-serif; max-width: 560px; margin: 2rem auto; padding: 0 1rem; }
    h1 { font-size: 1.5rem; margin-bottom: 0.5rem; }
    section { margin-bottom: 2rem; padding: 1.25rem; border: 1px solid #e0e0e0; border-radius: 8px; }
    section h2 { font-size: 1.1rem; margin-top: 0; margin-bottom: 1rem; }
    label { display: block; margin-bottom: 0.25rem; font-weight: 500; }
    input, textarea { width: 100%; padding: 0.5rem; margin-bottom: 0.75rem; border: 1px solid #ccc; border-radius: 4px; }
    textarea { min-height: 80px; resize: vertical; }
    button { padding: 0.5rem 1rem; background: #333; color: #fff; border: none; border-radius: 4px; cursor: pointer; }
    button:hover { background: #555; }
    button:disabled { opacity: 0.6; cursor: not-allowed; }
    .result { margin-top: 1rem; padding: 0.75rem; background: #f5f5f5; border-radius: 4px; font-size: 0.9rem; white-space: pre-wrap; word-break: break-all; }
    .result.error { background: #fee; color: #c00; }
    .result-media { margin-top: 1rem; }
    .result-media img { max-width: 100%; height: auto; border-radius: 4px; }
    .muted { font-size: 0.85rem; color: #666; }
    .nav-link { margin-right: 1rem; }
    a { color: #333; }
  </style>
</head>
<body>
  <h1>Gemini Image Generator</h1>
  <p><a href="/" class="nav-link">Status</a><a href="/generation" class="nav-link">Generation</a></p>

  <section>
    <h2>API Key</h2>
    <label for="gen-api-key">Sent as x-gemini-api-key with each request</label>
    <input type="password" id="gen-api-key" placeholder="Gemini API key" autocomplete="off" data-1p-ignore>
  </section>

  <section>
    <h2>Generate</h2>
    <form id="form-generate">
      <label for="gen-title">Main subject (title)</label>
      <input type="text" id="gen-title" name="title" placeholder="e.g. A flying car">
      <label for="gen-description">Details &amp; setting (description)</label>
      <textarea id="gen-description" name="description" placeholder="e.g. Night time, neon cyberpunk city, rain reflecting on metal"></textarea>
      <button type="submit">Generate image</button>
    </form>
  </section>

  <section>
    <h2>Result</h2>
    <div id="gen-result-wrap" style="display:none;">
      <div id="gen-result-media" class="result-media"></div>
      <pre id="gen-result-text" class="result"></pre>
    </div>
    <p class="muted">The enhanced prompt and generated image appear here.</p>
  </section>

  <script>
    (function() {
      var apiKeyEl = document.getElementById('gen-api-key');
      var resultWrap = document.getElementById('gen-result-wrap');
      var resultMedia = document.getElementById('gen-result-media');
      var resultText = document.getElementById('gen-result-text');
      var form = document.getElementById('form-generate');
      var button = form.querySelector('button[type="submit"]');

      function showError(message) {
        resultWrap.style.display = 'block';
        resultMedia.innerHTML = '';
        resultText.classList.add('error');
        resultText.textContent = message;
      }

      form.addEventListener('submit', function(e) {
        e.preventDefault();
        var apiKey = apiKeyEl.value.trim();
        if (!apiKey) {
          showError('Please enter your API key at the top.');
          return;
        }
        var title = document.getElementById('gen-title').value.trim();
        var description = document.getElementById('gen-description').value.trim();
        if (!title || !description) {
          showError('Please provide both a main subject and details.');
          return;
        }

        resultWrap.style.display = 'block';
        resultText.classList.remove('error');
        resultMedia.innerHTML = '';
        resultText.textContent = 'Generating (this may take a minute)...';
        button.disabled = true;

        fetch('/generate', {
          method: 'POST',
          headers: {
            'Content-Type': 'application/json',
            'x-gemini-api-key': apiKey
          },
          body: JSON.stringify({ title: title, description: description })
        }).then(function(res) {
          return res.json().then(function(data) { return { status: res.status, data: data }; });
        }).then(function(result) {
          button.disabled = false;
          if (result.status !== 200) {
            showError('Error (' + result.status + '): ' + (result.data.error || 'unknown'));
            return;
          }
          var img = document.createElement('img');
          img.src = 'data:image/png;base64,' + result.data.image_base64;
          img.alt = 'Generated image';
          resultMedia.appendChild(img);
          resultText.textContent = 'Enhanced prompt:\n' + result.data.enhanced_prompt;
        }).catch(function(err) {
          button.disabled = false;
          showError('Request failed: ' + err);
        });
      });
    })();
  </script>
</body>
</html>
`
