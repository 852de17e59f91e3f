package models

import (
	"encoding/json"
	"errors"
)

// Les sections d'une demande sont stockées en colonnes texte (JSON).
// L'encodage/décodage est explicite et validé : une colonne corrompue est
// signalée au lieu d'être propagée telle quelle.

func (a AdoptionApplication) EncodeSections() (personal, home, experience, reference string, err error) {
	p, err := json.Marshal(a.PersonalInfo)
	if err != nil {
		return "", "", "", "", err
	}
	h, err := json.Marshal(a.HomeInfo)
	if err != nil {
		return "", "", "", "", err
	}
	e, err := json.Marshal(a.Experience)
	if err != nil {
		return "", "", "", "", err
	}
	r, err := json.Marshal(a.ReferenceInfo)
	if err != nil {
		return "", "", "", "", err
	}
	return string(p), string(h), string(e), string(r), nil
}

func (a *AdoptionApplication) DecodeSections(personal, home, experience, reference string) error {
	if err := json.Unmarshal([]byte(personal), &a.PersonalInfo); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(home), &a.HomeInfo); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(experience), &a.Experience); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(reference), &a.ReferenceInfo); err != nil {
		return err
	}
	if a.PersonalInfo.Email == "" {
		return errors.New("demande sans email de contact")
	}
	return nil
}
