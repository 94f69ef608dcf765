package routes

import (
	"quotecalc/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathQuotes = "/quotes"

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.GET("/:id/history", quoteHandler.GetQuoteHistory)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.GET("/:id/pdf", quoteHandler.ExportQuotePDF)
	}
}
