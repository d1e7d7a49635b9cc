package r4

import (
	"slices"

	"github.com/gofhir/catalog/model"
)

// MedicationKnowledge is information about a medication used for
// decision support.
type MedicationKnowledge struct {
	model.ResourceBase
	code                       *CodeableConcept
	status                     *Code
	manufacturer               *Reference
	doseForm                   *CodeableConcept
	amount                     *Quantity
	synonym                    []*String
	relatedMedicationKnowledge []*MedicationKnowledgeRelatedMedicationKnowledge
	associatedMedication       []*Reference
	productType                []*CodeableConcept
	monograph                  []*MedicationKnowledgeMonograph
	ingredient                 []*MedicationKnowledgeIngredient
	preparationInstruction     *Markdown
	intendedRoute              []*CodeableConcept
	cost                       []*MedicationKnowledgeCost
	drugCharacteristic         []*MedicationKnowledgeDrugCharacteristic
	contraindication           []*Reference
}

func (r *MedicationKnowledge) Code() *CodeableConcept     { return r.code }
func (r *MedicationKnowledge) Status() *Code              { return r.status }
func (r *MedicationKnowledge) Manufacturer() *Reference   { return r.manufacturer }
func (r *MedicationKnowledge) DoseForm() *CodeableConcept { return r.doseForm }
func (r *MedicationKnowledge) Amount() *Quantity          { return r.amount }
func (r *MedicationKnowledge) Synonym() []*String         { return slices.Clone(r.synonym) }
func (r *MedicationKnowledge) RelatedMedicationKnowledge() []*MedicationKnowledgeRelatedMedicationKnowledge {
	return slices.Clone(r.relatedMedicationKnowledge)
}
func (r *MedicationKnowledge) AssociatedMedication() []*Reference {
	return slices.Clone(r.associatedMedication)
}
func (r *MedicationKnowledge) ProductType() []*CodeableConcept { return slices.Clone(r.productType) }
func (r *MedicationKnowledge) Monograph() []*MedicationKnowledgeMonograph {
	return slices.Clone(r.monograph)
}
func (r *MedicationKnowledge) Ingredient() []*MedicationKnowledgeIngredient {
	return slices.Clone(r.ingredient)
}
func (r *MedicationKnowledge) PreparationInstruction() *Markdown { return r.preparationInstruction }
func (r *MedicationKnowledge) IntendedRoute() []*CodeableConcept {
	return slices.Clone(r.intendedRoute)
}
func (r *MedicationKnowledge) Cost() []*MedicationKnowledgeCost { return slices.Clone(r.cost) }
func (r *MedicationKnowledge) DrugCharacteristic() []*MedicationKnowledgeDrugCharacteristic {
	return slices.Clone(r.drugCharacteristic)
}
func (r *MedicationKnowledge) Contraindication() []*Reference {
	return slices.Clone(r.contraindication)
}

func (*MedicationKnowledge) ResourceType() string { return "MedicationKnowledge" }
func (*MedicationKnowledge) TypeName() string     { return "MedicationKnowledge" }

func (r *MedicationKnowledge) Fields() []model.Field {
	return append(r.ResourceFields(),
		model.One("code", r.code),
		model.One("status", r.status),
		model.One("manufacturer", r.manufacturer),
		model.One("doseForm", r.doseForm),
		model.One("amount", r.amount),
		model.Many("synonym", r.synonym),
		model.Many("relatedMedicationKnowledge", r.relatedMedicationKnowledge),
		model.Many("associatedMedication", r.associatedMedication),
		model.Many("productType", r.productType),
		model.Many("monograph", r.monograph),
		model.Many("ingredient", r.ingredient),
		model.One("preparationInstruction", r.preparationInstruction),
		model.Many("intendedRoute", r.intendedRoute),
		model.Many("cost", r.cost),
		model.Many("drugCharacteristic", r.drugCharacteristic),
		model.Many("contraindication", r.contraindication),
	)
}

func (r *MedicationKnowledge) HasContent() bool { return model.HasContent(r) }
func (r *MedicationKnowledge) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, r)
}
func (r *MedicationKnowledge) Equal(o *MedicationKnowledge) bool {
	return model.Equal(model.Elem(r), model.Elem(o))
}

// ToBuilder seeds a builder from r.
func (r *MedicationKnowledge) ToBuilder() *MedicationKnowledgeBuilder {
	b := NewMedicationKnowledgeBuilder()
	b.base.CopyFrom(&r.ResourceBase)
	b.code = r.code
	b.status = r.status
	b.manufacturer = r.manufacturer
	b.doseForm = r.doseForm
	b.amount = r.amount
	b.synonym = slices.Clone(r.synonym)
	b.relatedMedicationKnowledge = slices.Clone(r.relatedMedicationKnowledge)
	b.associatedMedication = slices.Clone(r.associatedMedication)
	b.productType = slices.Clone(r.productType)
	b.monograph = slices.Clone(r.monograph)
	b.ingredient = slices.Clone(r.ingredient)
	b.preparationInstruction = r.preparationInstruction
	b.intendedRoute = slices.Clone(r.intendedRoute)
	b.cost = slices.Clone(r.cost)
	b.drugCharacteristic = slices.Clone(r.drugCharacteristic)
	b.contraindication = slices.Clone(r.contraindication)
	return b
}

// MedicationKnowledgeBuilder builds a MedicationKnowledge.
type MedicationKnowledgeBuilder struct {
	resourceBuilder[MedicationKnowledgeBuilder]
	code                       *CodeableConcept
	status                     *Code
	manufacturer               *Reference
	doseForm                   *CodeableConcept
	amount                     *Quantity
	synonym                    []*String
	relatedMedicationKnowledge []*MedicationKnowledgeRelatedMedicationKnowledge
	associatedMedication       []*Reference
	productType                []*CodeableConcept
	monograph                  []*MedicationKnowledgeMonograph
	ingredient                 []*MedicationKnowledgeIngredient
	preparationInstruction     *Markdown
	intendedRoute              []*CodeableConcept
	cost                       []*MedicationKnowledgeCost
	drugCharacteristic         []*MedicationKnowledgeDrugCharacteristic
	contraindication           []*Reference
}

// NewMedicationKnowledgeBuilder starts a MedicationKnowledge.
func NewMedicationKnowledgeBuilder() *MedicationKnowledgeBuilder {
	b := &MedicationKnowledgeBuilder{}
	b.self = b
	return b
}

func (b *MedicationKnowledgeBuilder) Code(c *CodeableConcept) *MedicationKnowledgeBuilder {
	b.code = c
	return b
}

func (b *MedicationKnowledgeBuilder) Status(s string) *MedicationKnowledgeBuilder {
	return b.StatusElement(NewCode(s))
}

func (b *MedicationKnowledgeBuilder) StatusElement(c *Code) *MedicationKnowledgeBuilder {
	b.status = c
	return b
}

func (b *MedicationKnowledgeBuilder) Manufacturer(r *Reference) *MedicationKnowledgeBuilder {
	b.manufacturer = r
	return b
}

func (b *MedicationKnowledgeBuilder) DoseForm(c *CodeableConcept) *MedicationKnowledgeBuilder {
	b.doseForm = c
	return b
}

func (b *MedicationKnowledgeBuilder) Amount(q *Quantity) *MedicationKnowledgeBuilder {
	b.amount = q
	return b
}

// Synonym appends synonyms.
func (b *MedicationKnowledgeBuilder) Synonym(s ...string) *MedicationKnowledgeBuilder {
	return b.SynonymElement(newStrings(s)...)
}

// SynonymElement appends synonym elements.
func (b *MedicationKnowledgeBuilder) SynonymElement(s ...*String) *MedicationKnowledgeBuilder {
	b.synonym = model.Append("synonym", b.synonym, s...)
	return b
}

// SetSynonym replaces the synonyms.
func (b *MedicationKnowledgeBuilder) SetSynonym(s []*String) *MedicationKnowledgeBuilder {
	b.synonym = model.Replace("synonym", s)
	return b
}

// RelatedMedicationKnowledge appends related medication knowledge groups.
func (b *MedicationKnowledgeBuilder) RelatedMedicationKnowledge(r ...*MedicationKnowledgeRelatedMedicationKnowledge) *MedicationKnowledgeBuilder {
	b.relatedMedicationKnowledge = model.Append("relatedMedicationKnowledge", b.relatedMedicationKnowledge, r...)
	return b
}

// SetRelatedMedicationKnowledge replaces the related medication knowledge groups.
func (b *MedicationKnowledgeBuilder) SetRelatedMedicationKnowledge(r []*MedicationKnowledgeRelatedMedicationKnowledge) *MedicationKnowledgeBuilder {
	b.relatedMedicationKnowledge = model.Replace("relatedMedicationKnowledge", r)
	return b
}

// AssociatedMedication appends associated medications.
func (b *MedicationKnowledgeBuilder) AssociatedMedication(r ...*Reference) *MedicationKnowledgeBuilder {
	b.associatedMedication = model.Append("associatedMedication", b.associatedMedication, r...)
	return b
}

// SetAssociatedMedication replaces the associated medications.
func (b *MedicationKnowledgeBuilder) SetAssociatedMedication(r []*Reference) *MedicationKnowledgeBuilder {
	b.associatedMedication = model.Replace("associatedMedication", r)
	return b
}

// ProductType appends product types.
func (b *MedicationKnowledgeBuilder) ProductType(c ...*CodeableConcept) *MedicationKnowledgeBuilder {
	b.productType = model.Append("productType", b.productType, c...)
	return b
}

// SetProductType replaces the product types.
func (b *MedicationKnowledgeBuilder) SetProductType(c []*CodeableConcept) *MedicationKnowledgeBuilder {
	b.productType = model.Replace("productType", c)
	return b
}

// Monograph appends monographs.
func (b *MedicationKnowledgeBuilder) Monograph(m ...*MedicationKnowledgeMonograph) *MedicationKnowledgeBuilder {
	b.monograph = model.Append("monograph", b.monograph, m...)
	return b
}

// SetMonograph replaces the monographs.
func (b *MedicationKnowledgeBuilder) SetMonograph(m []*MedicationKnowledgeMonograph) *MedicationKnowledgeBuilder {
	b.monograph = model.Replace("monograph", m)
	return b
}

// Ingredient appends ingredients.
func (b *MedicationKnowledgeBuilder) Ingredient(i ...*MedicationKnowledgeIngredient) *MedicationKnowledgeBuilder {
	b.ingredient = model.Append("ingredient", b.ingredient, i...)
	return b
}

// SetIngredient replaces the ingredients.
func (b *MedicationKnowledgeBuilder) SetIngredient(i []*MedicationKnowledgeIngredient) *MedicationKnowledgeBuilder {
	b.ingredient = model.Replace("ingredient", i)
	return b
}

func (b *MedicationKnowledgeBuilder) PreparationInstruction(s string) *MedicationKnowledgeBuilder {
	return b.PreparationInstructionElement(NewMarkdown(s))
}

func (b *MedicationKnowledgeBuilder) PreparationInstructionElement(m *Markdown) *MedicationKnowledgeBuilder {
	b.preparationInstruction = m
	return b
}

// IntendedRoute appends intended routes.
func (b *MedicationKnowledgeBuilder) IntendedRoute(c ...*CodeableConcept) *MedicationKnowledgeBuilder {
	b.intendedRoute = model.Append("intendedRoute", b.intendedRoute, c...)
	return b
}

// SetIntendedRoute replaces the intended routes.
func (b *MedicationKnowledgeBuilder) SetIntendedRoute(c []*CodeableConcept) *MedicationKnowledgeBuilder {
	b.intendedRoute = model.Replace("intendedRoute", c)
	return b
}

// Cost appends costs.
func (b *MedicationKnowledgeBuilder) Cost(c ...*MedicationKnowledgeCost) *MedicationKnowledgeBuilder {
	b.cost = model.Append("cost", b.cost, c...)
	return b
}

// SetCost replaces the costs.
func (b *MedicationKnowledgeBuilder) SetCost(c []*MedicationKnowledgeCost) *MedicationKnowledgeBuilder {
	b.cost = model.Replace("cost", c)
	return b
}

// DrugCharacteristic appends drug characteristics.
func (b *MedicationKnowledgeBuilder) DrugCharacteristic(d ...*MedicationKnowledgeDrugCharacteristic) *MedicationKnowledgeBuilder {
	b.drugCharacteristic = model.Append("drugCharacteristic", b.drugCharacteristic, d...)
	return b
}

// SetDrugCharacteristic replaces the drug characteristics.
func (b *MedicationKnowledgeBuilder) SetDrugCharacteristic(d []*MedicationKnowledgeDrugCharacteristic) *MedicationKnowledgeBuilder {
	b.drugCharacteristic = model.Replace("drugCharacteristic", d)
	return b
}

// Contraindication appends contraindications.
func (b *MedicationKnowledgeBuilder) Contraindication(r ...*Reference) *MedicationKnowledgeBuilder {
	b.contraindication = model.Append("contraindication", b.contraindication, r...)
	return b
}

// SetContraindication replaces the contraindications.
func (b *MedicationKnowledgeBuilder) SetContraindication(r []*Reference) *MedicationKnowledgeBuilder {
	b.contraindication = model.Replace("contraindication", r)
	return b
}

// Build constructs the MedicationKnowledge and runs v over it.
func (b *MedicationKnowledgeBuilder) Build(v model.Validator) (*MedicationKnowledge, error) {
	return model.Finish(v, &MedicationKnowledge{
		ResourceBase:               b.base.Resource(),
		code:                       b.code,
		status:                     b.status,
		manufacturer:               b.manufacturer,
		doseForm:                   b.doseForm,
		amount:                     b.amount,
		synonym:                    slices.Clone(b.synonym),
		relatedMedicationKnowledge: slices.Clone(b.relatedMedicationKnowledge),
		associatedMedication:       slices.Clone(b.associatedMedication),
		productType:                slices.Clone(b.productType),
		monograph:                  slices.Clone(b.monograph),
		ingredient:                 slices.Clone(b.ingredient),
		preparationInstruction:     b.preparationInstruction,
		intendedRoute:              slices.Clone(b.intendedRoute),
		cost:                       slices.Clone(b.cost),
		drugCharacteristic:         slices.Clone(b.drugCharacteristic),
		contraindication:           slices.Clone(b.contraindication),
	})
}

// MedicationKnowledgeRelatedMedicationKnowledge groups medication
// knowledge records related to this one.
type MedicationKnowledgeRelatedMedicationKnowledge struct {
	model.BackboneBase
	type_     *CodeableConcept
	reference []*Reference
}

func (e *MedicationKnowledgeRelatedMedicationKnowledge) Type() *CodeableConcept { return e.type_ }
func (e *MedicationKnowledgeRelatedMedicationKnowledge) Reference() []*Reference {
	return slices.Clone(e.reference)
}

func (*MedicationKnowledgeRelatedMedicationKnowledge) TypeName() string {
	return "MedicationKnowledge.relatedMedicationKnowledge"
}

func (e *MedicationKnowledgeRelatedMedicationKnowledge) Fields() []model.Field {
	return append(e.BackboneFields(), model.One("type", e.type_), model.Many("reference", e.reference))
}

func (e *MedicationKnowledgeRelatedMedicationKnowledge) HasContent() bool { return model.HasContent(e) }
func (e *MedicationKnowledgeRelatedMedicationKnowledge) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, e)
}
func (e *MedicationKnowledgeRelatedMedicationKnowledge) Equal(o *MedicationKnowledgeRelatedMedicationKnowledge) bool {
	return model.Equal(model.Elem(e), model.Elem(o))
}

// ToBuilder seeds a builder from e.
func (e *MedicationKnowledgeRelatedMedicationKnowledge) ToBuilder() *MedicationKnowledgeRelatedMedicationKnowledgeBuilder {
	b := NewMedicationKnowledgeRelatedMedicationKnowledgeBuilder()
	b.base.CopyFrom(&e.BackboneBase)
	b.type_ = e.type_
	b.reference = slices.Clone(e.reference)
	return b
}

// MedicationKnowledgeRelatedMedicationKnowledgeBuilder builds a
// MedicationKnowledgeRelatedMedicationKnowledge.
type MedicationKnowledgeRelatedMedicationKnowledgeBuilder struct {
	backboneBuilder[MedicationKnowledgeRelatedMedicationKnowledgeBuilder]
	type_     *CodeableConcept
	reference []*Reference
}

func NewMedicationKnowledgeRelatedMedicationKnowledgeBuilder() *MedicationKnowledgeRelatedMedicationKnowledgeBuilder {
	b := &MedicationKnowledgeRelatedMedicationKnowledgeBuilder{}
	b.self = b
	return b
}

func (b *MedicationKnowledgeRelatedMedicationKnowledgeBuilder) Type(c *CodeableConcept) *MedicationKnowledgeRelatedMedicationKnowledgeBuilder {
	b.type_ = c
	return b
}

// Reference appends references.
func (b *MedicationKnowledgeRelatedMedicationKnowledgeBuilder) Reference(r ...*Reference) *MedicationKnowledgeRelatedMedicationKnowledgeBuilder {
	b.reference = model.Append("reference", b.reference, r...)
	return b
}

// SetReference replaces the references.
func (b *MedicationKnowledgeRelatedMedicationKnowledgeBuilder) SetReference(r []*Reference) *MedicationKnowledgeRelatedMedicationKnowledgeBuilder {
	b.reference = model.Replace("reference", r)
	return b
}

func (b *MedicationKnowledgeRelatedMedicationKnowledgeBuilder) Build(v model.Validator) (*MedicationKnowledgeRelatedMedicationKnowledge, error) {
	return model.Finish(v, &MedicationKnowledgeRelatedMedicationKnowledge{
		BackboneBase: b.base.Backbone(),
		type_:        b.type_,
		reference:    slices.Clone(b.reference),
	})
}

// MedicationKnowledgeMonograph is a document describing the medication.
type MedicationKnowledgeMonograph struct {
	model.BackboneBase
	type_  *CodeableConcept
	source *Reference
}

func (e *MedicationKnowledgeMonograph) Type() *CodeableConcept { return e.type_ }
func (e *MedicationKnowledgeMonograph) Source() *Reference     { return e.source }
func (*MedicationKnowledgeMonograph) TypeName() string         { return "MedicationKnowledge.monograph" }

func (e *MedicationKnowledgeMonograph) Fields() []model.Field {
	return append(e.BackboneFields(), model.One("type", e.type_), model.One("source", e.source))
}

func (e *MedicationKnowledgeMonograph) HasContent() bool { return model.HasContent(e) }
func (e *MedicationKnowledgeMonograph) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, e)
}
func (e *MedicationKnowledgeMonograph) Equal(o *MedicationKnowledgeMonograph) bool {
	return model.Equal(model.Elem(e), model.Elem(o))
}

// ToBuilder seeds a builder from e.
func (e *MedicationKnowledgeMonograph) ToBuilder() *MedicationKnowledgeMonographBuilder {
	b := NewMedicationKnowledgeMonographBuilder()
	b.base.CopyFrom(&e.BackboneBase)
	b.type_, b.source = e.type_, e.source
	return b
}

// MedicationKnowledgeMonographBuilder builds a MedicationKnowledgeMonograph.
type MedicationKnowledgeMonographBuilder struct {
	backboneBuilder[MedicationKnowledgeMonographBuilder]
	type_  *CodeableConcept
	source *Reference
}

func NewMedicationKnowledgeMonographBuilder() *MedicationKnowledgeMonographBuilder {
	b := &MedicationKnowledgeMonographBuilder{}
	b.self = b
	return b
}

func (b *MedicationKnowledgeMonographBuilder) Type(c *CodeableConcept) *MedicationKnowledgeMonographBuilder {
	b.type_ = c
	return b
}

func (b *MedicationKnowledgeMonographBuilder) Source(r *Reference) *MedicationKnowledgeMonographBuilder {
	b.source = r
	return b
}

func (b *MedicationKnowledgeMonographBuilder) Build(v model.Validator) (*MedicationKnowledgeMonograph, error) {
	return model.Finish(v, &MedicationKnowledgeMonograph{BackboneBase: b.base.Backbone(), type_: b.type_, source: b.source})
}

// MedicationKnowledgeIngredient is an active or inactive ingredient.
type MedicationKnowledgeIngredient struct {
	model.BackboneBase
	item     MedicationKnowledgeIngredientItem
	isActive *Boolean
	strength *Ratio
}

func (e *MedicationKnowledgeIngredient) Item() MedicationKnowledgeIngredientItem { return e.item }
func (e *MedicationKnowledgeIngredient) IsActive() *Boolean                      { return e.isActive }
func (e *MedicationKnowledgeIngredient) Strength() *Ratio                        { return e.strength }
func (*MedicationKnowledgeIngredient) TypeName() string                          { return "MedicationKnowledge.ingredient" }

func (e *MedicationKnowledgeIngredient) Fields() []model.Field {
	return append(e.BackboneFields(),
		model.ChoiceOf("item", e.item),
		model.One("isActive", e.isActive),
		model.One("strength", e.strength),
	)
}

func (e *MedicationKnowledgeIngredient) HasContent() bool { return model.HasContent(e) }
func (e *MedicationKnowledgeIngredient) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, e)
}
func (e *MedicationKnowledgeIngredient) Equal(o *MedicationKnowledgeIngredient) bool {
	return model.Equal(model.Elem(e), model.Elem(o))
}

// ToBuilder seeds a builder from e.
func (e *MedicationKnowledgeIngredient) ToBuilder() *MedicationKnowledgeIngredientBuilder {
	b := NewMedicationKnowledgeIngredientBuilder()
	b.base.CopyFrom(&e.BackboneBase)
	b.item, b.isActive, b.strength = e.item, e.isActive, e.strength
	return b
}

// MedicationKnowledgeIngredientBuilder builds a MedicationKnowledgeIngredient.
type MedicationKnowledgeIngredientBuilder struct {
	backboneBuilder[MedicationKnowledgeIngredientBuilder]
	item     MedicationKnowledgeIngredientItem
	isActive *Boolean
	strength *Ratio
}

func NewMedicationKnowledgeIngredientBuilder() *MedicationKnowledgeIngredientBuilder {
	b := &MedicationKnowledgeIngredientBuilder{}
	b.self = b
	return b
}

// Item sets item[x]; a nil value clears it.
func (b *MedicationKnowledgeIngredientBuilder) Item(i MedicationKnowledgeIngredientItem) *MedicationKnowledgeIngredientBuilder {
	b.item = choice(i)
	return b
}

func (b *MedicationKnowledgeIngredientBuilder) IsActive(v bool) *MedicationKnowledgeIngredientBuilder {
	return b.IsActiveElement(NewBoolean(v))
}

func (b *MedicationKnowledgeIngredientBuilder) IsActiveElement(v *Boolean) *MedicationKnowledgeIngredientBuilder {
	b.isActive = v
	return b
}

func (b *MedicationKnowledgeIngredientBuilder) Strength(r *Ratio) *MedicationKnowledgeIngredientBuilder {
	b.strength = r
	return b
}

func (b *MedicationKnowledgeIngredientBuilder) Build(v model.Validator) (*MedicationKnowledgeIngredient, error) {
	return model.Finish(v, &MedicationKnowledgeIngredient{
		BackboneBase: b.base.Backbone(),
		item:         b.item,
		isActive:     b.isActive,
		strength:     b.strength,
	})
}

// MedicationKnowledgeCost is the pricing of the medication.
type MedicationKnowledgeCost struct {
	model.BackboneBase
	type_  *CodeableConcept
	source *String
	cost   *Money
}

func (e *MedicationKnowledgeCost) Type() *CodeableConcept { return e.type_ }
func (e *MedicationKnowledgeCost) Source() *String        { return e.source }
func (e *MedicationKnowledgeCost) Cost() *Money           { return e.cost }
func (*MedicationKnowledgeCost) TypeName() string         { return "MedicationKnowledge.cost" }

func (e *MedicationKnowledgeCost) Fields() []model.Field {
	return append(e.BackboneFields(),
		model.One("type", e.type_),
		model.One("source", e.source),
		model.One("cost", e.cost),
	)
}

func (e *MedicationKnowledgeCost) HasContent() bool { return model.HasContent(e) }
func (e *MedicationKnowledgeCost) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, e)
}
func (e *MedicationKnowledgeCost) Equal(o *MedicationKnowledgeCost) bool {
	return model.Equal(model.Elem(e), model.Elem(o))
}

// ToBuilder seeds a builder from e.
func (e *MedicationKnowledgeCost) ToBuilder() *MedicationKnowledgeCostBuilder {
	b := NewMedicationKnowledgeCostBuilder()
	b.base.CopyFrom(&e.BackboneBase)
	b.type_, b.source, b.cost = e.type_, e.source, e.cost
	return b
}

// MedicationKnowledgeCostBuilder builds a MedicationKnowledgeCost.
type MedicationKnowledgeCostBuilder struct {
	backboneBuilder[MedicationKnowledgeCostBuilder]
	type_  *CodeableConcept
	source *String
	cost   *Money
}

func NewMedicationKnowledgeCostBuilder() *MedicationKnowledgeCostBuilder {
	b := &MedicationKnowledgeCostBuilder{}
	b.self = b
	return b
}

func (b *MedicationKnowledgeCostBuilder) Type(c *CodeableConcept) *MedicationKnowledgeCostBuilder {
	b.type_ = c
	return b
}

func (b *MedicationKnowledgeCostBuilder) Source(s string) *MedicationKnowledgeCostBuilder {
	return b.SourceElement(NewString(s))
}

func (b *MedicationKnowledgeCostBuilder) SourceElement(s *String) *MedicationKnowledgeCostBuilder {
	b.source = s
	return b
}

func (b *MedicationKnowledgeCostBuilder) Cost(m *Money) *MedicationKnowledgeCostBuilder {
	b.cost = m
	return b
}

func (b *MedicationKnowledgeCostBuilder) Build(v model.Validator) (*MedicationKnowledgeCost, error) {
	return model.Finish(v, &MedicationKnowledgeCost{
		BackboneBase: b.base.Backbone(),
		type_:        b.type_,
		source:       b.source,
		cost:         b.cost,
	})
}

// MedicationKnowledgeDrugCharacteristic describes a physical property
// of the medication.
type MedicationKnowledgeDrugCharacteristic struct {
	model.BackboneBase
	type_ *CodeableConcept
	value MedicationKnowledgeDrugCharacteristicValue
}

func (e *MedicationKnowledgeDrugCharacteristic) Type() *CodeableConcept { return e.type_ }
func (e *MedicationKnowledgeDrugCharacteristic) Value() MedicationKnowledgeDrugCharacteristicValue {
	return e.value
}
func (*MedicationKnowledgeDrugCharacteristic) TypeName() string {
	return "MedicationKnowledge.drugCharacteristic"
}

func (e *MedicationKnowledgeDrugCharacteristic) Fields() []model.Field {
	return append(e.BackboneFields(), model.One("type", e.type_), model.ChoiceOf("value", e.value))
}

func (e *MedicationKnowledgeDrugCharacteristic) HasContent() bool { return model.HasContent(e) }
func (e *MedicationKnowledgeDrugCharacteristic) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, e)
}
func (e *MedicationKnowledgeDrugCharacteristic) Equal(o *MedicationKnowledgeDrugCharacteristic) bool {
	return model.Equal(model.Elem(e), model.Elem(o))
}

// ToBuilder seeds a builder from e.
func (e *MedicationKnowledgeDrugCharacteristic) ToBuilder() *MedicationKnowledgeDrugCharacteristicBuilder {
	b := NewMedicationKnowledgeDrugCharacteristicBuilder()
	b.base.CopyFrom(&e.BackboneBase)
	b.type_, b.value = e.type_, e.value
	return b
}

// MedicationKnowledgeDrugCharacteristicBuilder builds a
// MedicationKnowledgeDrugCharacteristic.
type MedicationKnowledgeDrugCharacteristicBuilder struct {
	backboneBuilder[MedicationKnowledgeDrugCharacteristicBuilder]
	type_ *CodeableConcept
	value MedicationKnowledgeDrugCharacteristicValue
}

func NewMedicationKnowledgeDrugCharacteristicBuilder() *MedicationKnowledgeDrugCharacteristicBuilder {
	b := &MedicationKnowledgeDrugCharacteristicBuilder{}
	b.self = b
	return b
}

func (b *MedicationKnowledgeDrugCharacteristicBuilder) Type(c *CodeableConcept) *MedicationKnowledgeDrugCharacteristicBuilder {
	b.type_ = c
	return b
}

// Value sets value[x]; a nil value clears it.
func (b *MedicationKnowledgeDrugCharacteristicBuilder) Value(v MedicationKnowledgeDrugCharacteristicValue) *MedicationKnowledgeDrugCharacteristicBuilder {
	b.value = choice(v)
	return b
}

func (b *MedicationKnowledgeDrugCharacteristicBuilder) Build(v model.Validator) (*MedicationKnowledgeDrugCharacteristic, error) {
	return model.Finish(v, &MedicationKnowledgeDrugCharacteristic{
		BackboneBase: b.base.Backbone(),
		type_:        b.type_,
		value:        b.value,
	})
}

func newStrings(vs []string) []*String {
	out := make([]*String, len(vs))
	for i, v := range vs {
		out[i] = NewString(v)
	}
	return out
}
