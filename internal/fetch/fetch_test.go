package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><h1>Test</h1></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Test</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result) // Result is returned even on error
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestPageText_Success(t *testing.T) {
	body := "<html><body><nav>Menu</nav><main><h1>Backend Engineer</h1><p>" +
		strings.Repeat("We build distributed systems in Go. ", 10) +
		"</p></main></body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	text, err := PageText(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "distributed systems")
	assert.NotContains(t, text, "Menu")
}

func TestPageText_TooShort(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><main>hi</main></body></html>"))
	}))
	defer server.Close()

	_, err := PageText(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chars of text")
}

func TestPageText_TruncatesLongPages(t *testing.T) {
	long := strings.Repeat("golang platform engineering teams ship quickly ", 2000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><main>" + long + "</main></body></html>"))
	}))
	defer server.Close()

	text, err := PageText(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(text), MaxPageText)
}

func TestExtractMainText_PrefersJobSelectors(t *testing.T) {
	html := `
	<html>
		<body>
			<div class="sidebar">Sidebar junk</div>
			<div class="job-description">
				<h2>Requirements</h2>
				<p>5 years experience in Go</p>
			</div>
		</body>
	</html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Requirements")
	assert.Contains(t, text, "5 years experience")
	assert.NotContains(t, text, "Sidebar junk")
}

func TestExtractMainText_FallbackToBody(t *testing.T) {
	html := `<html><body><div>Some content here.</div></body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Some content here")
}

func TestExtractMainText_RemovesNoise(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Navigation</nav>
			<main><p>Posting body.</p></main>
			<form><input name="apply"/></form>
			<footer>Footer</footer>
		</body>
	</html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Posting body")
	assert.NotContains(t, text, "Navigation")
	assert.NotContains(t, text, "Footer")
}

func TestIsLoginWalled(t *testing.T) {
	assert.True(t, IsLoginWalled("https://www.linkedin.com/jobs/view/123"))
	assert.True(t, IsLoginWalled("https://linkedin.com/jobs/view/123"))
	assert.True(t, IsLoginWalled("https://www.glassdoor.com/job-listing/x"))
	assert.False(t, IsLoginWalled("https://boards.greenhouse.io/acme/jobs/1"))
	assert.False(t, IsLoginWalled("https://notlinkedin.com/jobs"))
	assert.False(t, IsLoginWalled("::not a url::"))
}

func TestWalledHostName(t *testing.T) {
	assert.Equal(t, "LinkedIn", WalledHostName("https://www.linkedin.com/jobs/view/1"))
	assert.Equal(t, "Glassdoor", WalledHostName("https://glassdoor.com/x"))
	assert.Equal(t, "example.com", WalledHostName("https://example.com/x"))
}

func TestCleanText(t *testing.T) {
	input := "Line one   with   spaces\r\n\r\n\r\n\r\nLine two\t\n"
	got := CleanText(input)
	assert.Equal(t, "Line one with spaces\n\nLine two", got)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("x", MinContentLength+1)))
}
