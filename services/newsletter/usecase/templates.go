package usecase

import "fmt"

// Default market trends content used when the caller leaves the fields blank.
const (
	defaultTrendsSubject = "Your Monthly Market Trends Update"
	defaultTrendsContent = `<p>Here is what moved in the property and vehicle markets this month.</p>
<p>Log in to your dashboard to see listings matched to your saved searches.</p>`
)

func newsletterHTML(content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<h2>Propati Market Trends</h2>
	%s
	<hr>
	<p style="font-size: 12px; color: #777;">
		You are receiving this because you subscribed to the Propati newsletter.
	</p>
</body>
</html>`, content)
}

func welcomeHTML() string {
	return `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<h2>Welcome to the Propati newsletter</h2>
	<p>Thanks for subscribing. You will receive market trends and new listing
	highlights, and you can unsubscribe at any time.</p>
</body>
</html>`
}

func agentWelcomeHTML(name string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<h2>Welcome aboard, %s</h2>
	<p>Your agent account is ready. Purchase credits to publish your first
	property or vehicle listing and start reaching buyers.</p>
</body>
</html>`, name)
}
