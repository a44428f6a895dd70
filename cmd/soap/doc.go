// Command soap sanitizes text and packs lines into compressed binary snapshots.
//
// Text commands read standard input and write standard output:
//
//	soap sanitize             rewrite flagged vocabulary
//	soap suggest              same as sanitize
//	soap tone                 print sarcastic, formal, casual or neutral
//	soap detect [category]    list detected categories, or test one
//	soap grammar              fix common grammar slips
//	soap filter <patterns>    mask words matching comma-separated wildcards
//
// Buffer commands:
//
//	soap pack <file>          store input lines in a snapshot file
//	soap unpack <file>        print the lines stored in a snapshot file
//
// Configuration comes from the environment and an optional .env file:
// SOAP_DICTIONARY, SOAP_CLASSIFIER, SOAP_CACHE_SIZE, SOAP_CUSTOM_FILTERS,
// SERIALIZE_INITIAL_CAPACITY, SERIALIZE_MAX_CAPACITY, SERIALIZE_COMPRESSION,
// APP_ENV, LOG_LEVEL and LOG_FORMAT. Logs go to standard error.
package main
