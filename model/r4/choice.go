package r4

// Sealed choice sets. Each interface is closed by an unexported marker
// method, so only the listed alternatives can be assigned.

// MedicationKnowledgeIngredientItem is ingredient.item[x]:
// CodeableConcept or Reference(Substance).
type MedicationKnowledgeIngredientItem interface {
	ExtensionValue
	isMedicationKnowledgeIngredientItem()
}

// MedicationKnowledgeDrugCharacteristicValue is drugCharacteristic.value[x]:
// CodeableConcept, string, Quantity or base64Binary.
type MedicationKnowledgeDrugCharacteristicValue interface {
	ExtensionValue
	isMedicationKnowledgeDrugCharacteristicValue()
}

// EvidenceVariableCharacteristicDefinition is characteristic.definition[x]:
// Reference(Group), canonical(ActivityDefinition) or CodeableConcept.
type EvidenceVariableCharacteristicDefinition interface {
	ExtensionValue
	isEvidenceVariableCharacteristicDefinition()
}

// EvidenceVariableCharacteristicParticipantEffective is
// characteristic.participantEffective[x]: dateTime or Period.
type EvidenceVariableCharacteristicParticipantEffective interface {
	ExtensionValue
	isEvidenceVariableCharacteristicParticipantEffective()
}

func (*String) isExtensionValue()          {}
func (*Code) isExtensionValue()            {}
func (*ID) isExtensionValue()              {}
func (*URI) isExtensionValue()             {}
func (*Canonical) isExtensionValue()       {}
func (*Markdown) isExtensionValue()        {}
func (*DateTime) isExtensionValue()        {}
func (*Instant) isExtensionValue()         {}
func (*Base64Binary) isExtensionValue()    {}
func (*Boolean) isExtensionValue()         {}
func (*Integer) isExtensionValue()         {}
func (*UnsignedInt) isExtensionValue()     {}
func (*PositiveInt) isExtensionValue()     {}
func (*Decimal) isExtensionValue()         {}
func (*Coding) isExtensionValue()          {}
func (*CodeableConcept) isExtensionValue() {}
func (*Identifier) isExtensionValue()      {}
func (*Period) isExtensionValue()          {}
func (*Quantity) isExtensionValue()        {}
func (*Money) isExtensionValue()           {}
func (*Ratio) isExtensionValue()           {}
func (*Meta) isExtensionValue()            {}
func (*Reference) isExtensionValue()       {}

func (*CodeableConcept) isMedicationKnowledgeIngredientItem() {}
func (*Reference) isMedicationKnowledgeIngredientItem()       {}

func (*CodeableConcept) isMedicationKnowledgeDrugCharacteristicValue() {}
func (*String) isMedicationKnowledgeDrugCharacteristicValue()          {}
func (*Quantity) isMedicationKnowledgeDrugCharacteristicValue()        {}
func (*Base64Binary) isMedicationKnowledgeDrugCharacteristicValue()    {}

func (*Reference) isEvidenceVariableCharacteristicDefinition()       {}
func (*Canonical) isEvidenceVariableCharacteristicDefinition()       {}
func (*CodeableConcept) isEvidenceVariableCharacteristicDefinition() {}

func (*DateTime) isEvidenceVariableCharacteristicParticipantEffective() {}
func (*Period) isEvidenceVariableCharacteristicParticipantEffective()   {}
