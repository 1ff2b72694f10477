package response

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"bank-api/pkg/discord"

	"github.com/gin-gonic/gin"
)

// redactedHeaders are never copied into error reports.
var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
}

func reportBug(d discord.IDiscord, message string) {
	if d == nil {
		return
	}
	go func() {
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(context.Background(), msg); err != nil {
				log.Printf("pkg.response.reportBug: %v\n", err)
			}
		}
	}()
}

func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current string
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if len(current)+len(line) > DiscordMaxMessageLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > DiscordMaxMessageLen {
				chunks = append(chunks, line[:DiscordMaxMessageLen])
				line = line[DiscordMaxMessageLen:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}

func buildErrorReport(c *gin.Context, errString string, backtrace []string) string {
	var sb strings.Builder
	sb.WriteString("================ BANK API ERROR ================\n")
	sb.WriteString(fmt.Sprintf("Route   : %s\n", c.Request.URL.Path))
	sb.WriteString(fmt.Sprintf("Method  : %s\n", c.Request.Method))
	if params := c.Request.URL.Query().Encode(); params != "" {
		sb.WriteString(fmt.Sprintf("Params  : %s\n", params))
	}
	sb.WriteString("------------------------------------------------\n")

	if len(c.Request.Header) > 0 {
		keys := make([]string, 0, len(c.Request.Header))
		for key := range c.Request.Header {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		sb.WriteString("Headers :\n")
		for _, key := range keys {
			value := strings.Join(c.Request.Header[key], ", ")
			if redactedHeaders[key] {
				value = "[redacted]"
			}
			sb.WriteString(fmt.Sprintf("    %s: %s\n", key, value))
		}
		sb.WriteString("------------------------------------------------\n")
	}

	sb.WriteString(fmt.Sprintf("Error   : %s\n", errString))
	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			sb.WriteString(fmt.Sprintf("[%d]: %s\n", i, line))
		}
	}
	sb.WriteString("================================================\n")
	return sb.String()
}
