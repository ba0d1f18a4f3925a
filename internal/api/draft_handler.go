package api

import (
	"net/http"
	"strconv"

	"github.com/alenapavlenkko/nutridiary/internal/service"
	"github.com/gin-gonic/gin"
)

// DraftHandler обрабатывает диалог создания записи
type DraftHandler struct {
	draftService *service.DraftService
}

func NewDraftHandler(draftService *service.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// draftView - состояние черновика для фронтенда
type draftView struct {
	ID         string              `json:"id"`
	Kind       string              `json:"kind"`
	ItemID     int64               `json:"item_id"`
	ItemName   string              `json:"item_name"`
	Quantity   float64             `json:"quantity"`
	Unit       string              `json:"unit"`
	TimeOfDay  string              `json:"time_of_day"`
	Notes      string              `json:"notes"`
	ValidUnits []string            `json:"valid_units"`
	CanSubmit  bool                `json:"can_submit"`
	Lines      []service.DraftLine `json:"lines"`
}

func newDraftView(d *service.EntryDraft) draftView {
	return draftView{
		ID:         d.ID,
		Kind:       d.Kind,
		ItemID:     d.ItemID,
		ItemName:   d.ItemName,
		Quantity:   d.Quantity,
		Unit:       d.Unit,
		TimeOfDay:  d.TimeOfDay,
		Notes:      d.Notes,
		ValidUnits: d.ValidUnits(),
		CanSubmit:  d.CanSubmit(),
		Lines:      d.Lines,
	}
}

// Open - открыть диалог
func (h *DraftHandler) Open(c *gin.Context) {
	d := h.draftService.Open()
	c.JSON(http.StatusCreated, newDraftView(d))
}

// Get - текущее состояние черновика
func (h *DraftHandler) Get(c *gin.Context) {
	d, err := h.draftService.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newDraftView(d))
}

// Close - закрыть диалог, черновик отбрасывается
func (h *DraftHandler) Close(c *gin.Context) {
	h.draftService.Close(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// SetKind - смена типа записи
func (h *DraftHandler) SetKind(c *gin.Context) {
	var input struct {
		Kind string `json:"kind"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.draftService.SetKind(c.Param("id"), input.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newDraftView(d))
}

// SelectItem - выбор элемента справочника
func (h *DraftHandler) SelectItem(c *gin.Context) {
	var input struct {
		ItemID int64 `json:"item_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.draftService.SelectItem(c.Param("id"), input.ItemID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newDraftView(d))
}

// SetQuantity - изменение количества.
// Количество принимается строкой, мусор превращается в 0, а не в ошибку.
func (h *DraftHandler) SetQuantity(c *gin.Context) {
	var input struct {
		Quantity string `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.draftService.SetQuantity(c.Param("id"), service.ParseQuantity(input.Quantity))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newDraftView(d))
}

// SetUnit - смена единицы измерения
func (h *DraftHandler) SetUnit(c *gin.Context) {
	var input struct {
		Unit string `json:"unit"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.draftService.SetUnit(c.Param("id"), input.Unit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newDraftView(d))
}

// UpdateDetails - время приема и заметка
func (h *DraftHandler) UpdateDetails(c *gin.Context) {
	var input service.UpdateDraftDetailsDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.draftService.UpdateDetails(c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newDraftView(d))
}

// UpdateLine - ручная правка строки рецепта
func (h *DraftHandler) UpdateLine(c *gin.Context) {
	lineID, err := strconv.ParseUint(c.Param("lineID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "неверный ID строки"})
		return
	}

	var input struct {
		Quantity string `json:"quantity"`
		Unit     string `json:"unit"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.draftService.UpdateLine(c.Param("id"), uint(lineID), service.ParseQuantity(input.Quantity), input.Unit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newDraftView(d))
}

// Rescale - явный пересчет строк рецепта под текущее число порций
func (h *DraftHandler) Rescale(c *gin.Context) {
	d, err := h.draftService.Rescale(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newDraftView(d))
}

// Submit - отправка черновика в дневник
func (h *DraftHandler) Submit(c *gin.Context) {
	var input service.SubmitDraftDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.draftService.Submit(c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}
