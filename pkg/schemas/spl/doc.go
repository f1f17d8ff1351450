// Package spl embeds the FDA Structured Product Labeling (SPL) schemas.
//
// SPL is an HL7 standard adopted by the FDA for exchanging drug product
// labeling: prescription and OTC drug labels and medical device listings.
// The entry point is "SPL.xsd"; the HL7 data types live under "coreschemas/".
//
// The schemas carry a BSD-3-Clause style license from HL7.
package spl
