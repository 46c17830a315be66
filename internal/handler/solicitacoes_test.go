package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filtroCtx(rawQuery string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/v1/solicitacoes?"+rawQuery, nil)
	return c, w
}

func TestBindFiltro(t *testing.T) {
	// Sem parâmetros: defaults de paginação
	c, _ := filtroCtx("")
	filtro, ok := bindFiltro(c)
	require.True(t, ok)
	assert.Equal(t, 1, filtro.Page)
	assert.Equal(t, 20, filtro.Limit)

	// Valores fora do intervalo são saneados, não rejeitados
	c, _ = filtroCtx("page=0&limit=9999")
	filtro, ok = bindFiltro(c)
	require.True(t, ok)
	assert.Equal(t, 1, filtro.Page)
	assert.Equal(t, 100, filtro.Limit)

	// Filtros de domínio continuam passando pelo bind
	c, _ = filtroCtx("status=quoting&page=3&limit=50")
	filtro, ok = bindFiltro(c)
	require.True(t, ok)
	assert.Equal(t, "quoting", filtro.Status)
	assert.Equal(t, 3, filtro.Page)
	assert.Equal(t, 50, filtro.Limit)
}
