package test

const DEFAULT_UPSTREAM_BODY = `{"ip":"1.2.3.4"}`
